// Package storagetest 提供測試用的記憶體資料庫。
package storagetest

import (
	"testing"

	"gorm.io/driver/sqlite"

	"member_web/internal/models"
	"member_web/internal/storage"
)

// NewSQLiteDB 建立已完成遷移的記憶體 SQLite 資料庫
// 只開一條連線，否則每條連線都會看到各自獨立的 :memory: 資料庫
func NewSQLiteDB(t testing.TB) *storage.Database {
	t.Helper()

	db, err := storage.Open(sqlite.Open(":memory:"), nil)
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Member{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
