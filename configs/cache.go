package configs

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/pkg/cache"
	"github.com/tekrabyte/waui-sub001/repository"
	"github.com/tekrabyte/waui-sub001/services"
)

// OpenCache returns the durable key/value store and a close func.
func OpenCache(cfg *Config, db *gorm.DB) (services.KeyValueStore, func(), error) {
	switch cfg.CacheDriver {
	case "db":
		return repository.NewCacheRepository(db), func() {}, nil
	case "redis":
		s, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "pos:")
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported CACHE_DRIVER %q", cfg.CacheDriver)
	}
}
