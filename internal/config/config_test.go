package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Addr)
	assert.Equal(t, "kb.db", cfg.DatabasePath)
	assert.Equal(t, "templates", cfg.TemplateDir)
	assert.Equal(t, "static", cfg.StaticDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KB_ADDR", ":9000")
	t.Setenv("KB_DATABASE_PATH", "/tmp/other.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, "templates", cfg.TemplateDir)
}
