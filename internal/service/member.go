package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"member_web/internal/models"
	"member_web/internal/repository"
)

// ErrInvalidCredentials 表示電子郵件或密碼錯誤，兩者不作區分
var ErrInvalidCredentials = errors.New("invalid email or password")

// EventPublisher 接收會員事件
type EventPublisher interface {
	Publish(event models.MemberEvent)
}

type MemberService struct {
	memberRepo repository.MemberRepository
	publisher  EventPublisher
}

func NewMemberService(memberRepo repository.MemberRepository, publisher EventPublisher) *MemberService {
	return &MemberService{memberRepo: memberRepo, publisher: publisher}
}

// Signup 建立新會員
// 不預先檢查電子郵件是否存在，由資料庫唯一索引保證
func (s *MemberService) Signup(ctx context.Context, data *models.SignupInput) (*models.Member, error) {
	member, err := s.memberRepo.Create(ctx, data)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.Publish(models.NewMemberRegisteredEvent(member))
	}
	return member, nil
}

func (s *MemberService) FindMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	return s.memberRepo.FindByEmail(ctx, email)
}

// Authenticate 驗證電子郵件與密碼
func (s *MemberService) Authenticate(ctx context.Context, email, password string) (*models.Member, error) {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return member, nil
}
