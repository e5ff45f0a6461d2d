package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "postcomments", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DB_NAME", "blog")
	t.Setenv("TOKEN_LIFETIME_HOURS", "48")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "blog", cfg.DBName)
	assert.Equal(t, 48*time.Hour, cfg.TokenLifetime)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_LIFETIME_HOURS", "soon")
	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime)
}
