package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   gateway credentials), security settings
// - default: Values common across all environments (timeouts, windows)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Gateway     GatewayConfig
	Appointment AppointmentConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// GatewayConfig holds the payment gateway credentials and endpoints.
// ClientID/ClientSecret/RedirectURI are required for the multi-tenant
// OAuth flow; DefaultAccessToken enables single-tenant mode when set.
type GatewayConfig struct {
	Provider           string        `envconfig:"GATEWAY_PROVIDER" default:"mercadopago"`
	ClientID           string        `envconfig:"GATEWAY_CLIENT_ID" default:""`
	ClientSecret       string        `envconfig:"GATEWAY_CLIENT_SECRET" default:""`
	RedirectURI        string        `envconfig:"GATEWAY_REDIRECT_URI" default:""`
	WebhookURL         string        `envconfig:"GATEWAY_WEBHOOK_URL" required:"true"`
	DefaultAccessToken string        `envconfig:"GATEWAY_DEFAULT_ACCESS_TOKEN" default:""`
	Timeout            time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"5s"`
	PaymentExpiry      time.Duration `envconfig:"GATEWAY_PAYMENT_EXPIRY" default:"15m"`
}

type AppointmentConfig struct {
	// OverlapWindow widens the double-booking check around the
	// requested time. Zero means exact-timestamp collision only.
	OverlapWindow time.Duration `envconfig:"APPOINTMENT_OVERLAP_WINDOW" default:"0s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// OAuthConfigured reports whether the multi-tenant merchant OAuth flow
// can be used at all.
func (c *GatewayConfig) OAuthConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURI != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Gateway: GatewayConfig{
			Provider:      "mercadopago",
			ClientID:      "test-client",
			ClientSecret:  "test-secret",
			RedirectURI:   "http://localhost:8889/oauth/callback",
			WebhookURL:    "http://localhost:8889/webhook",
			Timeout:       5 * time.Second,
			PaymentExpiry: 15 * time.Minute,
		},
	}
}
