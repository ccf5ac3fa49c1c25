package models

import (
	"time"
)

// EventType 定義即時推送事件的類型
type EventType string

const (
	EventMemberRegistered EventType = "member_registered"
)

// MemberEvent 是推送給即時訂閱者的會員事件，不包含密碼
type MemberEvent struct {
	Type      EventType `json:"type"`
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMemberRegisteredEvent 由新建立的會員產生註冊事件
func NewMemberRegisteredEvent(m *Member) MemberEvent {
	return MemberEvent{
		Type:      EventMemberRegistered,
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Timestamp: time.Now(),
	}
}
