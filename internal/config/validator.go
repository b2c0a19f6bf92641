package config

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func ValidateStatic(cfg *Config) error {
	var errors []error

	if err := validateServer(cfg.Server); err != nil {
		errors = append(errors, err)
	}

	if err := validateShopify(cfg.Shopify); err != nil {
		errors = append(errors, err)
	}

	if err := validateMeta(cfg.Meta); err != nil {
		errors = append(errors, err)
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

func validateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return &ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", cfg.Port),
		}
	}

	if cfg.ReadTimeout <= 0 {
		return &ValidationError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		}
	}

	if cfg.WriteTimeout <= 0 {
		return &ValidationError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		}
	}

	return nil
}

func validateShopify(cfg ShopifyConfig) error {
	if cfg.WebhookSecret == "" {
		return &ValidationError{
			Field:   "shopify.webhook_secret",
			Message: "webhook secret is required",
		}
	}

	return nil
}

func validateMeta(cfg MetaConfig) error {
	if cfg.PixelID == "" {
		return &ValidationError{
			Field:   "meta.pixel_id",
			Message: "pixel id is required",
		}
	}

	if cfg.AccessToken == "" {
		return &ValidationError{
			Field:   "meta.access_token",
			Message: "access token is required",
		}
	}

	if !strings.HasPrefix(cfg.GraphURL, "https://") {
		return &ValidationError{
			Field:   "meta.graph_url",
			Message: fmt.Sprintf("graph url must use https, got %q", cfg.GraphURL),
		}
	}

	if cfg.RequestTimeout <= 0 {
		return &ValidationError{
			Field:   "meta.request_timeout",
			Message: "request timeout must be positive",
		}
	}

	return nil
}
