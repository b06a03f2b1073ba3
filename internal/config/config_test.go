package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_DRIVER", "DATA_DIR", "REDIS_HOST", "MAX_UPLOAD_MB", "LLM_PROVIDER", "APP_ENV", "APP_PRODUCTION"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, StoreFile, cfg.Store.Driver)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5, cfg.Upload.MaxSizeMB)
	assert.Equal(t, "skillorbit_events", cfg.Broker.Exchange)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")
	t.Setenv("LLM_PROVIDER", "Groq")
	t.Setenv("APP_PRODUCTION", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5, cfg.Upload.MaxSizeMB)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.True(t, cfg.IsProduction())
}
