package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archwize/archwize/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, config.Duration(time.Hour), cfg.Redis.TTL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archwize.yaml")
	data := `
host: 127.0.0.1
port: 9000
debug: true
huggingface:
  token: file-token
redis:
  addr: localhost:6379
  ttl: 10m
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "file-token", cfg.HuggingFace.Token)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, config.Duration(10*time.Minute), cfg.Redis.TTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archwize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0o644))

	t.Setenv("PORT", "7777")
	t.Setenv("HUGGINGFACE_API_TOKEN", "env-token")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Port)
	assert.Equal(t, "env-token", cfg.HuggingFace.Token)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archwize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not an int\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
