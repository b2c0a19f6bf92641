package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"capirelay/internal/constants"
)

func LoadConfig(configFile string) (*Config, error) {
	viper.Reset()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateStatic(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("meta.graph_url", constants.DefaultGraphURL)
	viper.SetDefault("meta.request_timeout", constants.DefaultDeliveryTimeout)
	viper.SetDefault("server.read_timeout", constants.DefaultServerTimeout)
	viper.SetDefault("server.write_timeout", constants.DefaultServerTimeout)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

func bindEnvVariables() {
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Secrets are expected to arrive through the environment in production;
	// the YAML file only needs to carry the non-sensitive surface.
	viper.BindEnv("shopify.webhook_secret", "SHOPIFY_WEBHOOK_SECRET")

	viper.BindEnv("meta.graph_url", "META_GRAPH_URL")
	viper.BindEnv("meta.pixel_id", "META_PIXEL_ID")
	viper.BindEnv("meta.access_token", "META_ACCESS_TOKEN")
	viper.BindEnv("meta.test_event_code", "META_TEST_EVENT_CODE")
	viper.BindEnv("meta.request_timeout", "META_REQUEST_TIMEOUT")

	viper.BindEnv("logging.level", "LOGGING_LEVEL")
	viper.BindEnv("logging.format", "LOGGING_FORMAT")

	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.service_name", "TRACING_SERVICE_NAME")
	viper.BindEnv("tracing.otlp.endpoint", "TRACING_OTLP_ENDPOINT")
	viper.BindEnv("tracing.otlp.insecure", "TRACING_OTLP_INSECURE")
}
