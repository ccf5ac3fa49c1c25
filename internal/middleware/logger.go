package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const contextLogger = "logger"

// RequestLogger 為每個請求產生 request id，並記錄開始與完成
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		entry := log.WithFields(logrus.Fields{
			"http.req.path":       c.Request.URL.Path,
			"http.req.method":     c.Request.Method,
			"http.req.id":         requestID,
			"http.req.client_ip":  c.ClientIP(),
			"http.req.user_agent": c.Request.UserAgent(),
		})
		entry.Debug("request started")

		c.Set(contextLogger, entry)
		c.Header("X-Request-ID", requestID)
		c.Next()

		status := c.Writer.Status()
		entry = entry.WithFields(logrus.Fields{
			"http.resp.took_ms": int64(time.Since(start) / time.Millisecond),
			"http.resp.status":  status,
			"http.resp.bytes":   c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		msg := fmt.Sprintf("%s %s %d", c.Request.Method, c.Request.URL.Path, status)
		switch {
		case status >= 500:
			entry.Error(msg)
		case status >= 400:
			entry.Warn(msg)
		default:
			entry.Info(msg)
		}
	}
}

// Logger 取得請求範圍的日誌器，沒有經過 RequestLogger 時回傳標準日誌器
func Logger(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(contextLogger); ok {
		if entry, ok := v.(logrus.FieldLogger); ok {
			return entry
		}
	}
	return logrus.StandardLogger()
}
