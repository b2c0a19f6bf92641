package config

import (
	"time"
)

type Config struct {
	Server  ServerConfig
	Shopify ShopifyConfig
	Meta    MetaConfig
	Logging LoggingConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type ShopifyConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// MetaConfig addresses the Conversions API events endpoint. AccessToken is
// passed as a query parameter on the outbound call and must never appear in
// logs or responses.
type MetaConfig struct {
	GraphURL       string        `mapstructure:"graph_url"`
	PixelID        string        `mapstructure:"pixel_id"`
	AccessToken    string        `mapstructure:"access_token"`
	TestEventCode  string        `mapstructure:"test_event_code"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TracingConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	ServiceName string        `mapstructure:"service_name"`
	OTLP        OTLPConfig    `mapstructure:"otlp"`
	Sampler     SamplerConfig `mapstructure:"sampler"`
}

type OTLPConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

type SamplerConfig struct {
	Type  string  `mapstructure:"type"`
	Param float64 `mapstructure:"param"`
}

func Load(configFile string) (*Config, error) {
	return LoadConfig(configFile)
}
