package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names recognized by the loader.
const (
	EnvAPIURL = "MOCHA_USERS_SERVICE_API_URL"
	EnvAPIKey = "MOCHA_USERS_SERVICE_API_KEY"
)

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // explicit YAML config file path
	EnvFile    string // explicit .env file path
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load builds a Config from file and environment sources, applies defaults,
// and validates the result. Precedence: environment > .env file > YAML file
// > built-in defaults.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findEnvFile()
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load .env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvOverrides(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindEnvOverrides maps the well-known environment variables onto config keys.
func bindEnvOverrides(v *viper.Viper) {
	if url := os.Getenv(EnvAPIURL); url != "" {
		v.Set("api_url", url)
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		v.Set("api_key", key)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		v.Set("logging.level", level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		v.Set("logging.format", format)
	}
}

// findEnvFile searches for a .env file in standard locations.
func findEnvFile() string {
	searchPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
