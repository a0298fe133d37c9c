package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
provider:
  base_url: http://provider.local
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.PriceTTL())
	assert.Equal(t, 24*time.Hour, cfg.FundamentalsTTL())
	assert.Equal(t, 100, cfg.Corpus.FastPrefixSize)
	assert.Contains(t, cfg.Provider.MembershipURL, "wikipedia")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate(), "base URL is still required")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PROVIDER_BASE_URL", "http://override.local")
	t.Setenv("FAST_PREFIX_SIZE", "25")

	cfg, err := Load(writeConfig(t, `
provider:
  base_url: http://file.local
corpus:
  fast_prefix_size: 200
`))
	require.NoError(t, err)
	assert.Equal(t, "http://override.local", cfg.Provider.BaseURL)
	assert.Equal(t, 25, cfg.Corpus.FastPrefixSize)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
provider:
  base_url: http://provider.local
cache:
  price_ttl_minutes: -5
`))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
