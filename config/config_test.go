package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8343", cfg.Port)
	assert.Equal(t, "localhost", cfg.BindAddress)
	assert.Equal(t, "localhost:8343", cfg.Address())
	assert.True(t, cfg.SeedData)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BIND_ADDRESS", "0.0.0.0")
	t.Setenv("SEED_DATA", "false")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:9000", cfg.Address())
	assert.False(t, cfg.SeedData)
}
