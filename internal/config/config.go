package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Marketplace  MarketplaceConfig
	Commission   CommissionConfig
	InternalAuth InternalAuthConfig
	CORS         CORSConfig
	RateLimit    RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// MarketplaceConfig points at the hosted marketplace backend. ClientID and
// ClientSecret identify this server to the credential-exchange endpoint;
// the secret must never reach the browser.
type MarketplaceConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// CommissionConfig holds the commission percentages applied to the base
// booking total. Zero disables the corresponding line item.
type CommissionConfig struct {
	ProviderPercent float64
	CustomerPercent float64
}

// InternalAuthConfig guards the API against callers other than the
// storefront server. Disabled by default for local development.
type InternalAuthConfig struct {
	Enabled bool
	Secret  string
	Issuer  string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "marketplace-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "3500")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "marketplace")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("MARKETPLACE_BASE_URL", "https://flex-api.example.com/v1")
	viper.SetDefault("MARKETPLACE_TOKEN_URL", "https://flex-api.example.com/v1/auth/token")
	viper.SetDefault("MARKETPLACE_CLIENT_ID", "")
	viper.SetDefault("MARKETPLACE_CLIENT_SECRET", "")
	viper.SetDefault("COMMISSION_PROVIDER_PERCENT", 10.0)
	viper.SetDefault("COMMISSION_CUSTOMER_PERCENT", 0.0)
	viper.SetDefault("INTERNAL_AUTH_ENABLED", false)
	viper.SetDefault("INTERNAL_AUTH_SECRET", "change-this-secret-in-production")
	viper.SetDefault("INTERNAL_AUTH_ISSUER", "storefront")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Marketplace: MarketplaceConfig{
			BaseURL:      viper.GetString("MARKETPLACE_BASE_URL"),
			TokenURL:     viper.GetString("MARKETPLACE_TOKEN_URL"),
			ClientID:     viper.GetString("MARKETPLACE_CLIENT_ID"),
			ClientSecret: viper.GetString("MARKETPLACE_CLIENT_SECRET"),
		},
		Commission: CommissionConfig{
			ProviderPercent: viper.GetFloat64("COMMISSION_PROVIDER_PERCENT"),
			CustomerPercent: viper.GetFloat64("COMMISSION_CUSTOMER_PERCENT"),
		},
		InternalAuth: InternalAuthConfig{
			Enabled: viper.GetBool("INTERNAL_AUTH_ENABLED"),
			Secret:  viper.GetString("INTERNAL_AUTH_SECRET"),
			Issuer:  viper.GetString("INTERNAL_AUTH_ISSUER"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
