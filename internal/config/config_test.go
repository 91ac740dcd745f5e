package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "profile-service")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")
}

func TestParse_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "profile-service", cfg.App.AppName)
	assert.Equal(t, StoreDriverMemory, cfg.Database.Driver)
	assert.Equal(t, PictureStoreLocal, cfg.Storage.PictureStore)
	assert.Equal(t, "./uploads/pictures", cfg.Storage.PictureDir)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "profile-service")
	t.Setenv("STORE_DRIVER", "memory")

	_, err := Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestParse_PostgresNeedsHost(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Parse()
	assert.ErrorIs(t, err, errInvalidConfig)

	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "profiles")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.True(t, cfg.Database.RunMigrations)
}

func TestParse_GCSNeedsBucket(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PICTURE_STORE", "gcs")

	_, err := Parse()
	assert.ErrorIs(t, err, errInvalidConfig)

	t.Setenv("PICTURE_GCS_BUCKET", "pictures")
	_, err = Parse()
	assert.NoError(t, err)
}

func TestParse_UnknownDriver(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Parse()
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestIsProduction(t *testing.T) {
	assert.True(t, Config{App: AppConfig{Environment: "Production"}}.IsProduction())
	assert.True(t, Config{App: AppConfig{Environment: "prod"}}.IsProduction())
	assert.False(t, Config{App: AppConfig{Environment: "dev"}}.IsProduction())
}

func TestParseJWT_OnlyNeedsTokenSettings(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "postgres")

	cfg, err := ParseJWT()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.AccessSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessExpiresIn)
	assert.Equal(t, "profile-service", cfg.Issuer)
}

func TestParseJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_ACCESS_SECRET"))

	_, err := ParseJWT()
	assert.ErrorIs(t, err, errMissingRequiredEnv)
}
