package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tekrabyte/waui-sub001/entity"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SESSION_TTL", "bogus")

	cfg := LoadConfig()

	assert.Equal(t, "test", cfg.AppEnv)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "db", cfg.CacheDriver)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9100")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "http://pos.local, ,http://kitchen.local")

	cfg := LoadConfig()

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "redis", cfg.CacheDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://pos.local", "http://kitchen.local"}, cfg.CORSOrigins)
}

func TestConnectionDB_UnsupportedDriver(t *testing.T) {
	_, err := ConnectionDB(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDemo_Idempotent(t *testing.T) {
	db, err := ConnectionDB(&Config{DBDriver: "sqlite", DBSource: "file:seedtest?mode=memory&cache=shared"})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	require.NoError(t, SeedDemo(db))
	require.NoError(t, SeedDemo(db))

	assert.Equal(t, int64(7), count(t, db, &entity.Product{}))
	assert.Equal(t, int64(4), count(t, db, &entity.Table{}))
}

func TestOpenCache_DBDriver(t *testing.T) {
	db, err := ConnectionDB(&Config{DBDriver: "sqlite", DBSource: "file:cachetest?mode=memory&cache=shared"})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	store, closeFn, err := OpenCache(&Config{CacheDriver: "db"}, db)
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, store)

	_, _, err = OpenCache(&Config{CacheDriver: "memcached"}, db)
	assert.Error(t, err)
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
