package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values for the authorizer policy. The resource ARN is a placeholder
// that deployments override with AUTHORIZER_POLICY_RESOURCE.
const (
	DefaultCredential     = "null"
	DefaultPrincipalID    = "xxxxx"
	DefaultPolicyAction   = "iot:Publish"
	DefaultPolicyResource = "arn:aws:iot:us-east-1:<your_aws_account_id>:topic/customauthtesting"
	DefaultTablesLimit    = 10
)

// Config holds all configuration for the functions
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Authorizer  AuthorizerConfig
	Tables      TablesConfig
	AWS         AWSConfig
	Server      ServerConfig
}

// AuthorizerConfig holds the custom authorizer settings.
// Username and Password are only logged; they never influence the decision.
type AuthorizerConfig struct {
	Username       string
	Password       string
	PrincipalID    string `validate:"required"`
	PolicyAction   string `validate:"required"`
	PolicyResource string `validate:"required"`
}

// TablesConfig holds the diagnostic lister settings
type TablesConfig struct {
	PageLimit int32  `validate:"min=1,max=100"`
	Endpoint  string `validate:"omitempty,url"`
}

// AWSConfig holds overrides for the AWS SDK. Empty values fall back to the
// SDK's default credential and region chain.
type AWSConfig struct {
	Region string
}

// ServerConfig holds the local invoke harness settings
type ServerConfig struct {
	RateLimit    float64 `validate:"gt=0"`
	RateBurst    int     `validate:"min=1"`
	MaxBodyBytes int64   `validate:"min=1"`
}

// Load resolves configuration from an optional .env file and the environment.
// It is called once at process start.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "3001")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("USERNAME", DefaultCredential)
	v.SetDefault("PASSWORD", DefaultCredential)
	v.SetDefault("AUTHORIZER_PRINCIPAL_ID", DefaultPrincipalID)
	v.SetDefault("AUTHORIZER_POLICY_ACTION", DefaultPolicyAction)
	v.SetDefault("AUTHORIZER_POLICY_RESOURCE", DefaultPolicyResource)
	v.SetDefault("TABLES_PAGE_LIMIT", DefaultTablesLimit)
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)
	v.SetDefault("MAX_REQUEST_BYTES", 1<<20)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Authorizer: AuthorizerConfig{
			Username:       v.GetString("USERNAME"),
			Password:       v.GetString("PASSWORD"),
			PrincipalID:    v.GetString("AUTHORIZER_PRINCIPAL_ID"),
			PolicyAction:   v.GetString("AUTHORIZER_POLICY_ACTION"),
			PolicyResource: v.GetString("AUTHORIZER_POLICY_RESOURCE"),
		},
		Tables: TablesConfig{
			PageLimit: v.GetInt32("TABLES_PAGE_LIMIT"),
			Endpoint:  v.GetString("DYNAMODB_ENDPOINT"),
		},
		AWS: AWSConfig{
			Region: v.GetString("AWS_REGION"),
		},
		Server: ServerConfig{
			RateLimit:    v.GetFloat64("RATE_LIMIT_RPS"),
			RateBurst:    v.GetInt("RATE_LIMIT_BURST"),
			MaxBodyBytes: v.GetInt64("MAX_REQUEST_BYTES"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
