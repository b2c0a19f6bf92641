package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
server:
  port: 8080
shopify:
  webhook_secret: "shpss_secret"
meta:
  pixel_id: "111222333"
  access_token: "EAAtoken"
logging:
  level: info
`

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "shpss_secret", cfg.Shopify.WebhookSecret)
	assert.Equal(t, "111222333", cfg.Meta.PixelID)
	assert.Equal(t, "EAAtoken", cfg.Meta.AccessToken)

	// Defaults fill in what the file left out.
	assert.Equal(t, "https://graph.facebook.com/v19.0", cfg.Meta.GraphURL)
	assert.Equal(t, 5*time.Second, cfg.Meta.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	t.Setenv("SHOPIFY_WEBHOOK_SECRET", "from-env")
	t.Setenv("META_TEST_EVENT_CODE", "TEST25219")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Shopify.WebhookSecret)
	assert.Equal(t, "TEST25219", cfg.Meta.TestEventCode)
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8080
meta:
  pixel_id: "111222333"
  access_token: "EAAtoken"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shopify.webhook_secret")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateStatic(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{
				Port:         8080,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
			},
			Shopify: ShopifyConfig{WebhookSecret: "s"},
			Meta: MetaConfig{
				GraphURL:       "https://graph.facebook.com/v19.0",
				PixelID:        "1",
				AccessToken:    "t",
				RequestTimeout: 5 * time.Second,
			},
		}
	}

	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(cfg *Config) {},
			wantError: false,
		},
		{
			name:      "bad port",
			mutate:    func(cfg *Config) { cfg.Server.Port = 0 },
			wantError: true,
		},
		{
			name:      "missing pixel id",
			mutate:    func(cfg *Config) { cfg.Meta.PixelID = "" },
			wantError: true,
		},
		{
			name:      "missing access token",
			mutate:    func(cfg *Config) { cfg.Meta.AccessToken = "" },
			wantError: true,
		},
		{
			name:      "plain http graph url",
			mutate:    func(cfg *Config) { cfg.Meta.GraphURL = "http://graph.facebook.com" },
			wantError: true,
		},
		{
			name:      "zero request timeout",
			mutate:    func(cfg *Config) { cfg.Meta.RequestTimeout = 0 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := ValidateStatic(cfg)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
