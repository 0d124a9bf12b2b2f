package entity

import "time"

// CacheEntry backs the durable key/value cache when CACHE_DRIVER=db.
type CacheEntry struct {
	Key       string `gorm:"primaryKey;column:cache_key;size:128"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
