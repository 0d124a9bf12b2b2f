package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tekrabyte/waui-sub001/entity"
)

// CacheRepository is the durable key/value cache kept in the local database.
type CacheRepository struct{ DB *gorm.DB }

func NewCacheRepository(db *gorm.DB) *CacheRepository { return &CacheRepository{DB: db} }

func (r *CacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var e entity.CacheEntry
	err := r.DB.WithContext(ctx).First(&e, "cache_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (r *CacheRepository) Set(ctx context.Context, key, value string) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entity.CacheEntry{Key: key, Value: value}).Error
}
