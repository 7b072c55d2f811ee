package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "DATA_FILE", "SQLITE_FILE", "STORE_RESET_ON_CORRUPT", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "data/db.json", cfg.Store.DataFile)
	assert.Equal(t, "data/db.sqlite", cfg.Store.SQLiteFile)
	assert.False(t, cfg.Store.ResetOnCorrupt)
	assert.Equal(t, 120, cfg.RateLimit.PerMinute)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("STORE_RESET_ON_CORRUPT", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.True(t, cfg.Store.ResetOnCorrupt)
	assert.Equal(t, 0, cfg.RateLimit.PerMinute)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
}
