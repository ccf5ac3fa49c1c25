package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"member_web/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
	sendBufferSize = 256
)

// Subscriber 代表一個訂閱會員事件的 WebSocket 連接
type Subscriber struct {
	conn *websocket.Conn
	send chan models.MemberEvent
}

// MemberFeed 將會員註冊事件即時推送給所有訂閱者
type MemberFeed struct {
	subscribers map[*Subscriber]bool
	mu          sync.RWMutex
	log         logrus.FieldLogger
}

func NewMemberFeed(log logrus.FieldLogger) *MemberFeed {
	return &MemberFeed{
		subscribers: make(map[*Subscriber]bool),
		log:         log,
	}
}

// HandleConnection 處理新的 WebSocket 連接，直到連接關閉才返回
func (f *MemberFeed) HandleConnection(conn *websocket.Conn) {
	sub := &Subscriber{
		conn: conn,
		send: make(chan models.MemberEvent, sendBufferSize),
	}
	f.addSubscriber(sub)

	defer func() {
		f.removeSubscriber(sub)
		conn.Close()
	}()

	go f.writePump(sub)
	f.readPump(sub)
}

// Publish 向所有訂閱者廣播事件
// 發送佇列已滿的訂閱者會被移除
func (f *MemberFeed) Publish(event models.MemberEvent) {
	var slow []*Subscriber

	f.mu.RLock()
	for sub := range f.subscribers {
		select {
		case sub.send <- event:
		default:
			slow = append(slow, sub)
		}
	}
	f.mu.RUnlock()

	for _, sub := range slow {
		f.log.Warn("member feed subscriber too slow, dropping")
		f.removeSubscriber(sub)
		sub.conn.Close()
	}
}

// SubscriberCount 回傳目前的訂閱者數量
func (f *MemberFeed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

// readPump 只處理控制訊息，客戶端送來的內容一律丟棄
func (f *MemberFeed) readPump(sub *Subscriber) {
	sub.conn.SetReadLimit(maxMessageSize)
	sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		sub.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				f.log.WithError(err).Warn("member feed unexpected close")
			}
			return
		}
	}
}

func (f *MemberFeed) writePump(sub *Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.send:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				f.log.WithError(err).Error("member event encoding error")
				continue
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (f *MemberFeed) addSubscriber(sub *Subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribers[sub] = true
}

// removeSubscriber 移除訂閱者並關閉其發送通道，重複呼叫是安全的
func (f *MemberFeed) removeSubscriber(sub *Subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subscribers[sub]; ok {
		delete(f.subscribers, sub)
		close(sub.send)
	}
}
