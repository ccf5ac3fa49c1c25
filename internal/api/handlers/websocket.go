package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"member_web/internal/middleware"
	"member_web/internal/service"
)

// FeedHandler 處理會員事件的 WebSocket 訂閱
type FeedHandler struct {
	feed     *service.MemberFeed
	upgrader websocket.Upgrader
}

// NewFeedHandler 只接受來自允許來源的連接；沒有 Origin 標頭的非瀏覽器客戶端放行
// 路由本身掛在 AuthMiddleware 之後，未帶 token 的連接不會到達這裡
func NewFeedHandler(feed *service.MemberFeed, allowedOrigin string) *FeedHandler {
	return &FeedHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Subscribe 處理 GET /members/events
func (h *FeedHandler) Subscribe(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失敗時已自行回應錯誤
		middleware.Logger(c).WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.feed.HandleConnection(conn)
}
