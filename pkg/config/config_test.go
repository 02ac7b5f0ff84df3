package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, NegativeStockAllow, cfg.Inventory.NegativeStock)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.NoError(t, cfg.Validate())
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("INVENTORY_NEGATIVE_STOCK", "reject")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "0")

	cfg := fromViper(newEnvViper())

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, NegativeStockReject, cfg.Inventory.NegativeStock)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Metrics.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"driver", func(c *Config) { c.Store.Driver = "sqlite" }},
		{"policy", func(c *Config) { c.Inventory.NegativeStock = "maybe" }},
		{"max conns", func(c *Config) { c.DB.MaxConns = 0 }},
		{"min conns", func(c *Config) { c.DB.MinConns = 50 }},
		{"port", func(c *Config) { c.HTTP.Port = 70000 }},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fromViper(viper.New())
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/ledger?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
