// Package logging 建立應用程式共用的 logrus 日誌器。
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"member_web/pkg/config"
)

// New 依配置建立日誌器
// 正式環境輸出 JSON，開發環境輸出易讀的文字格式
func New(cfg config.LogConfig, env string) *logrus.Logger {
	return NewWithOutput(cfg, env, os.Stdout)
}

func NewWithOutput(cfg config.LogConfig, env string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = out

	if env == config.EnvProduction {
		log.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	} else {
		log.Formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		}
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("level", cfg.Level).Warn("unknown log level, falling back to info")
	}
	log.SetLevel(level)

	return log
}
