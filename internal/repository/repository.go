package repository

import "member_web/internal/storage"

type Repositories struct {
	Member MemberRepository
}

func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		Member: NewMemberRepository(db),
	}
}
