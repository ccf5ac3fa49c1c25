package storage

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"member_web/pkg/config"
)

// Database 包裝 gorm 連線
type Database struct {
	*gorm.DB
}

// NewPostgresDB 依配置連線到 PostgreSQL
func NewPostgresDB(cfg config.DBConfig, log *logrus.Logger) (*Database, error) {
	db, err := Open(postgres.Open(cfg.DSN()), log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	return db, nil
}

// Open 以任意 gorm dialector 建立連線，測試時可傳入 sqlite
// TranslateError 讓唯一鍵衝突統一成 gorm.ErrDuplicatedKey
func Open(dialector gorm.Dialector, log *logrus.Logger) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	})
	if err != nil {
		return nil, err
	}
	return &Database{DB: db}, nil
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate 自動遷移資料庫結構
func (db *Database) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

// newGormLogger 讓 SQL 日誌走 logrus，等級跟隨應用程式日誌等級
func newGormLogger(log *logrus.Logger) logger.Interface {
	if log == nil {
		return logger.Default.LogMode(logger.Silent)
	}

	level := logger.Warn
	switch log.GetLevel() {
	case logrus.DebugLevel, logrus.TraceLevel:
		level = logger.Info
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		level = logger.Error
	}

	return logger.New(log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
