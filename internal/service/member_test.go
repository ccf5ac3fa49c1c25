package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member_web/internal/models"
	"member_web/internal/repository"
	"member_web/internal/storage/storagetest"
)

type recordingPublisher struct {
	events []models.MemberEvent
}

func (p *recordingPublisher) Publish(event models.MemberEvent) {
	p.events = append(p.events, event)
}

func newMemberService(t *testing.T) (*MemberService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	repo := repository.NewMemberRepository(storagetest.NewSQLiteDB(t))
	return NewMemberService(repo, pub), pub
}

func TestMemberService_SignupThenFind(t *testing.T) {
	svc, pub := newMemberService(t)
	ctx := context.Background()

	member, err := svc.Signup(ctx, &models.SignupInput{Name: "Hong", Email: "hong@test.com", Password: "1234"})
	require.NoError(t, err)

	found, err := svc.FindMemberByEmail(ctx, "hong@test.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hong", found.Name)
	assert.Equal(t, "hong@test.com", found.Email)

	require.Len(t, pub.events, 1)
	assert.Equal(t, models.EventMemberRegistered, pub.events[0].Type)
	assert.Equal(t, member.ID, pub.events[0].ID)
	assert.Equal(t, "hong@test.com", pub.events[0].Email)
}

func TestMemberService_SignupDuplicate(t *testing.T) {
	svc, pub := newMemberService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &models.SignupInput{Name: "Hong", Email: "hong@test.com", Password: "1234"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &models.SignupInput{Name: "Other", Email: "hong@test.com", Password: "abcd"})
	assert.True(t, errors.Is(err, repository.ErrDuplicateEmail))
	assert.Len(t, pub.events, 1)

	found, err := svc.FindMemberByEmail(ctx, "hong@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Hong", found.Name)
}

func TestMemberService_FindMissingIsNotError(t *testing.T) {
	svc, _ := newMemberService(t)

	found, err := svc.FindMemberByEmail(context.Background(), "ghost@test.com")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemberService_Authenticate(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &models.SignupInput{Name: "Hong", Email: "hong@test.com", Password: "1234"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "hong@test.com", password: "1234"},
		{name: "wrong password", email: "hong@test.com", password: "4321", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@test.com", password: "1234", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, err := svc.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, member)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Hong", member.Name)
		})
	}
}
