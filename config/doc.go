// Package config provides configuration loading and validation for the
// users-service SDK.
//
// It uses Viper to load configuration from an optional YAML file and from
// environment variables, with godotenv picking up .env files. The API key
// is always supplied via environment:
//
//	MOCHA_USERS_SERVICE_API_URL  (optional, defaults to production)
//	MOCHA_USERS_SERVICE_API_KEY  (required)
package config
