package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DevDefaultsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, DevJWTSecret, cfg.JWTSecret)
}

func TestLoad_DevKeepsExplicitSecret(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_SECRET", "explicit")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "explicit", cfg.JWTSecret)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRejectsPlaceholder(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", DevJWTSecret)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 3, cfg.RedisDB)
}
