package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/srcbookdev/mocha-users-service-sdk/logger"
)

// DefaultAPIURL is the production endpoint of the hosted users service.
const DefaultAPIURL = "https://getmocha.com/apps-api"

// Config holds everything the SDK needs to talk to the users service.
type Config struct {
	// APIURL is the base URL of the remote users service.
	APIURL string `yaml:"api_url" mapstructure:"api_url" validate:"required,url"`

	// APIKey authenticates this deployment against the users service.
	// Required on every outbound call.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`

	// Logging configures the SDK loggers.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

var validate = validator.New()

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is complete and well-formed.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("config: field %s failed %q validation", f.Field(), f.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return c.Logging.Validate()
}
