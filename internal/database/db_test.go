package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweetlex/tweetlex/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				Password: "testpass",
			},
		},
		{
			name: "creates connection with custom port",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "tweetlex",
				Username: "admin",
				Password: "secret",
			},
		},
		{
			name: "creates connection with pool settings",
			cfg: config.DatabaseConfig{
				Host:            "localhost",
				Port:            3306,
				Database:        "testdb",
				Username:        "testuser",
				Password:        "testpass",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "tweetlex",
		Username: "testuser",
		Password: "testpass",
		Params:   map[string]string{"timeout": "5s"},
	}

	got := dsn(cfg)

	assert.True(t, strings.HasPrefix(got, "testuser:testpass@tcp(localhost:3306)/tweetlex?"), got)
	assert.Contains(t, got, "parseTime=true")
	assert.Contains(t, got, "multiStatements=true")
	assert.Contains(t, got, "collation=utf8mb4_unicode_ci")
	assert.Contains(t, got, "charset=utf8mb4")
	assert.Contains(t, got, "timeout=5s")
}
