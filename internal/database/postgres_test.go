package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/result-reporter/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:           "db.internal",
		Port:           6543,
		Name:           "result_reporter",
		User:           "reporter",
		Password:       "secret",
		SSLMode:        "require",
		MaxConnections: 8,
	}

	poolConfig, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, uint16(6543), poolConfig.ConnConfig.Port)
	assert.Equal(t, "result_reporter", poolConfig.ConnConfig.Database)
	assert.Equal(t, "reporter", poolConfig.ConnConfig.User)
	assert.Equal(t, int32(8), poolConfig.MaxConns)
	assert.Equal(t, int32(1), poolConfig.MinConns)
	assert.Equal(t, 5*time.Minute, poolConfig.MaxConnLifetime)
}

func TestPoolConfigKeepsDefaultMaxConns(t *testing.T) {
	poolConfig, err := PoolConfig(&config.DatabaseConfig{Host: "localhost", Port: 5432, Name: "x", User: "u", SSLMode: "disable"})
	require.NoError(t, err)
	assert.Positive(t, poolConfig.MaxConns)
}

func TestPoolConfigInvalidSSLMode(t *testing.T) {
	_, err := PoolConfig(&config.DatabaseConfig{Host: "localhost", Port: 5432, SSLMode: "sometimes"})
	assert.Error(t, err)
}
