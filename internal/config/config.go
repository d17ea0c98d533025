package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the docuprint HTTP API configuration. Everything comes
// from environment variables with dev-friendly defaults.
type Config struct {
	Env  string
	HTTP HTTPConfig
	Session struct {
		Secret string
		TTL    time.Duration
	}
	OTP struct {
		TTL time.Duration
	}
	// Default deployment keeps everything in memory; DB/Redis are
	// opt-in and fall back to memory when unreachable.
	DBEnabled bool
	Database  DatabaseConfig
	Redis     struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	SMS SMSConfig
}

// HTTPConfig sets the listen address and the server timeouts.
type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// DatabaseConfig is the postgres connection config.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// SMSConfig points at an optional SMS gateway for OTP delivery. When
// GatewayURL is empty codes are only returned in the API response
// (demo behavior).
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
}

func Load() *Config {
	cfg := &Config{}
	cfg.Env = getEnv("ENV", "development")
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.HTTP.ReadHeaderTimeout = parseDuration(getEnv("HTTP_READ_HEADER_TIMEOUT", "5s"), 5*time.Second)
	cfg.HTTP.ShutdownTimeout = parseDuration(getEnv("HTTP_SHUTDOWN_TIMEOUT", "10s"), 10*time.Second)

	cfg.Session.Secret = getEnv("SESSION_SECRET", "docuprint-dev-secret")
	cfg.Session.TTL = parseDuration(getEnv("SESSION_TTL", "168h"), 168*time.Hour)
	cfg.OTP.TTL = parseDuration(getEnv("OTP_TTL", "5m"), 5*time.Minute)

	cfg.DBEnabled = getEnv("DB_ENABLED", "false") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "docuprint")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.SMS.GatewayURL = getEnv("SMS_GATEWAY_URL", "")
	cfg.SMS.APIKey = getEnv("SMS_API_KEY", "")
	cfg.SMS.SenderID = getEnv("SMS_SENDER_ID", "DOCUPRINT")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
