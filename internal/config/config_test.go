package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "cocktaildb", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.False(t, cfg.AuthEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.True(t, cfg.IsDevelopment())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_NAME", "otherdb")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "otherdb", cfg.DBName)
	assert.False(t, cfg.IsDevelopment())
}

func TestAuthRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET")

	t.Setenv("AUTH_SECRET", "shh")

	cfg, err := New()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled)
}

func TestInvalidSSLMode(t *testing.T) {
	t.Setenv("DB_SSL_MODE", "prefer")

	_, err := New()
	assert.Error(t, err)
}

func TestDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := New()
	require.NoError(t, err)

	dbCfg := cfg.Database()
	assert.Equal(t, "db.internal", dbCfg.Host)
	assert.Equal(t, "5433", dbCfg.Port)
	assert.Equal(t, cfg.DBUser, dbCfg.User)
}
