package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"member_web/internal/storage"
)

// baseRepository 提供各實體 repository 共用的 gorm 操作
type baseRepository struct {
	db *storage.Database
}

func newBaseRepository(db *storage.Database) baseRepository {
	return baseRepository{db: db}
}

func (r baseRepository) create(ctx context.Context, model interface{}) error {
	return r.db.WithContext(ctx).Create(model).Error
}

// first 查詢第一筆符合條件的記錄
// 找不到時回傳 found=false 而不是錯誤
func (r baseRepository) first(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := r.db.WithContext(ctx).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
