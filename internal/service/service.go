package service

import (
	"github.com/sirupsen/logrus"

	"member_web/internal/repository"
	"member_web/internal/utils"
	"member_web/pkg/config"
)

type Services struct {
	Member *MemberService
	Tokens *utils.TokenIssuer
	Feed   *MemberFeed
}

func NewServices(repos *repository.Repositories, auth config.AuthConfig, log logrus.FieldLogger) *Services {
	feed := NewMemberFeed(log)

	return &Services{
		Member: NewMemberService(repos.Member, feed),
		Tokens: utils.NewTokenIssuer(auth.JWTSecret, auth.TokenTTL),
		Feed:   feed,
	}
}
