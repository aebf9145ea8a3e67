// Package config loads service settings from the environment (or a local .env file)
// using viper. Stripe credentials and the frontend URL must be present at startup.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultPort = "8080"

var requiredKeys = []string{"STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET", "FRONTEND_URL"}

type Config struct {
	Port                string `mapstructure:"PORT"`
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripeAPIURL        string `mapstructure:"STRIPE_API_URL"`
	FrontendURL         string `mapstructure:"FRONTEND_URL"`
}

// LoadConfig reads configuration from ./.env (optional) and environment variables.
// Environment variables win over the file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	for _, key := range []string{"PORT", "STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET", "STRIPE_API_URL", "FRONTEND_URL"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	cfg.FrontendURL = strings.TrimRight(strings.TrimSpace(cfg.FrontendURL), "/")

	if missing := cfg.missingKeys(); len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func (c Config) missingKeys() []string {
	values := map[string]string{
		"STRIPE_SECRET_KEY":     c.StripeSecretKey,
		"STRIPE_WEBHOOK_SECRET": c.StripeWebhookSecret,
		"FRONTEND_URL":          c.FrontendURL,
	}
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
