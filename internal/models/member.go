package models

import (
	"time"
)

// Member 表示一個已註冊的會員
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // 電子郵件，必須唯一
	Password  string    `gorm:"not null" json:"-"`                 // bcrypt 雜湊，json 序列化時會被忽略
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定資料表名稱
func (Member) TableName() string {
	return "members"
}

// MaxPasswordBytes 是 bcrypt 可接受的密碼長度上限（位元組）
const MaxPasswordBytes = 72

// SignupInput 定義註冊請求的結構
// max=72 以字元計，多位元組密碼由 repository 再以位元組檢查
type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=72"`
}
