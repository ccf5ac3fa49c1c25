package repository

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"member_web/internal/models"
	"member_web/internal/storage"
)

// ErrDuplicateEmail 表示電子郵件已被其他會員使用
var ErrDuplicateEmail = errors.New("email already registered")

// ErrPasswordTooLong 表示密碼超過 bcrypt 的 72 位元組上限
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

type MemberRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	Create(ctx context.Context, data *models.SignupInput) (*models.Member, error)
}

type memberRepository struct {
	baseRepository
}

func NewMemberRepository(db *storage.Database) MemberRepository {
	return &memberRepository{baseRepository: newBaseRepository(db)}
}

// FindByEmail 以完全相符的電子郵件查詢會員，找不到時回傳 nil, nil
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	found, err := r.first(ctx, &member, "email = ?", email)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "find member by email %q", email)
	}
	if !found {
		return nil, nil
	}
	return &member, nil
}

// Create 雜湊密碼後寫入新會員
func (r *memberRepository) Create(ctx context.Context, data *models.SignupInput) (*models.Member, error) {
	if len(data.Password) > models.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "hash password")
	}

	member := &models.Member{
		Name:     data.Name,
		Email:    data.Email,
		Password: string(hashed),
	}

	if err := r.create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.Wrap(ErrDuplicateEmail, data.Email)
		}
		return nil, pkgerrors.Wrap(err, "create member")
	}
	return member, nil
}
