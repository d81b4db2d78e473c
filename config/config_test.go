package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SERVER_ENV", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("APP_ID", "app-123")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "realtor")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, EnvDevelopment, cfg.ServerEnv)
	assert.True(t, cfg.Development())
	assert.Equal(t, "5432", cfg.DB.Port)
}

func TestLoadRequiresAppID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ID", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestProductionMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_ENV", EnvProduction)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Development())
}

func TestDSN(t *testing.T) {
	dsn := DBConfig{Host: "db", Port: "5433", Name: "realtor", User: "app", Password: "pw"}.DSN()
	assert.Equal(t, "host=db user=app password=pw dbname=realtor port=5433 sslmode=disable", dsn)
}
