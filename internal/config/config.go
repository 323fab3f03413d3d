package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	CORS   CORSConfig
	Email  EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds outbound mail transport settings. The transport is
// validated once at startup; report delivery reuses the same sender for
// every request.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Validate checks that the selected mail provider has the settings it needs.
// A missing value here is a fatal startup error, never a per-request one.
func (e *EmailConfig) Validate() error {
	switch e.Provider {
	case "noop":
		return nil
	case "ses":
		if e.Region == "" || e.FromAddress == "" {
			return fmt.Errorf("email provider %q requires region and from_address", e.Provider)
		}
		return nil
	default:
		return fmt.Errorf("unknown email provider %q (expected ses or noop)", e.Provider)
	}
}

// Load reads configuration from environment variables with the SALESDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SALESDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "salesdesk")
	v.SetDefault("db.password", "salesdesk_secret")
	v.SetDefault("db.name", "salesdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "salesdesk")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "reports@salesdesk.local")
	v.SetDefault("email.from_name", "Salesdesk Reports")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "SALESDESK_SERVER_PORT",
		"server.read_timeout":  "SALESDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "SALESDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "SALESDESK_SERVER_ENVIRONMENT",
		"db.host":              "SALESDESK_DB_HOST",
		"db.port":              "SALESDESK_DB_PORT",
		"db.user":              "SALESDESK_DB_USER",
		"db.password":          "SALESDESK_DB_PASSWORD",
		"db.name":              "SALESDESK_DB_NAME",
		"db.sslmode":           "SALESDESK_DB_SSLMODE",
		"db.max_open":          "SALESDESK_DB_MAX_OPEN",
		"db.max_idle":          "SALESDESK_DB_MAX_IDLE",
		"jwt.secret":           "SALESDESK_JWT_SECRET",
		"jwt.access_expiry":    "SALESDESK_JWT_ACCESS_EXPIRY",
		"jwt.issuer":           "SALESDESK_JWT_ISSUER",
		"cors.allowed_origins": "SALESDESK_CORS_ALLOWED_ORIGINS",
		"email.provider":       "SALESDESK_EMAIL_PROVIDER",
		"email.region":         "SALESDESK_EMAIL_REGION",
		"email.access_key":     "SALESDESK_EMAIL_ACCESS_KEY",
		"email.secret_key":     "SALESDESK_EMAIL_SECRET_KEY",
		"email.from_address":   "SALESDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":      "SALESDESK_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SALESDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SALESDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		AccessKey:   v.GetString("email.access_key"),
		SecretKey:   v.GetString("email.secret_key"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	if err := cfg.Email.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email configuration: %w", err)
	}

	return cfg, nil
}
