package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.ApiBaseURL)
	assert.Equal(t, "localhost", cfg.Pg.Host)
	assert.Equal(t, 5432, cfg.Pg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Production())
	assert.Equal(t, "disable", cfg.SSLMode())
}

func TestLoad_YamlFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("api_base_url: https://api.giftharmony.example/api\npg:\n  host: db.internal\n  port: 5433\n  user: gift\n  password: secret\n  dbname: giftharmony\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.giftharmony.example/api", cfg.ApiBaseURL)
	assert.Equal(t, "db.internal", cfg.Pg.Host)
	assert.Equal(t, 5433, cfg.Pg.Port)
	assert.Equal(t, "giftharmony", cfg.Pg.Dbname)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: https://file.example/api\n"), 0o600))

	t.Setenv("API_URL", "https://env.example/api")
	t.Setenv("PG_PORT", "6543")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example/api", cfg.ApiBaseURL)
	assert.Equal(t, 6543, cfg.Pg.Port)
}

func TestSSLMode_Production(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "require", cfg.SSLMode())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
