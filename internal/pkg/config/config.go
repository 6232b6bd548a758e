package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   upstream base URLs, secrets)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Billing  BillingConfig
	Realtime RealtimeConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Warsaw"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Warsaw"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60 (CEST)
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// UpstreamConfig points at the two scheduling services the operations feed is
// aggregated from.
type UpstreamConfig struct {
	VisitsBaseURL       string        `envconfig:"UPSTREAM_VISITS_BASE_URL" required:"true"`
	AppointmentsBaseURL string        `envconfig:"UPSTREAM_APPOINTMENTS_BASE_URL" required:"true"`
	Timeout             time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	RetryMax            int           `envconfig:"UPSTREAM_RETRY_MAX" default:"3"`
}

type BillingConfig struct {
	// All upstream amounts are reported in this single currency.
	Currency string `envconfig:"BILLING_CURRENCY" default:"PLN"`
}

type RealtimeConfig struct {
	HeartbeatInterval time.Duration `envconfig:"REALTIME_HEARTBEAT_INTERVAL" default:"25s"`
	BroadcastQuiet    time.Duration `envconfig:"REALTIME_BROADCAST_QUIET" default:"400ms"`
	SubscriberBuffer  int           `envconfig:"REALTIME_SUBSCRIBER_BUFFER" default:"8"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Warsaw",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Warsaw",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Upstream: UpstreamConfig{
			VisitsBaseURL:       "http://localhost:18081",
			AppointmentsBaseURL: "http://localhost:18082",
			Timeout:             2 * time.Second,
			RetryMax:            0,
		},
		Billing: BillingConfig{
			Currency: "PLN",
		},
		Realtime: RealtimeConfig{
			HeartbeatInterval: time.Second,
			BroadcastQuiet:    10 * time.Millisecond,
			SubscriberBuffer:  8,
		},
	}
}
