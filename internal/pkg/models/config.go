package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Store    StoreConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	RateLimit       int // requests per minute per user, 0 disables
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver     string // postgres or sqlite
	Host       string
	Port       int
	Username   string
	Password   string
	Database   string
	SSLMode    string
	MaxConns   int
	IdleConns  int
	SQLitePath string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// StoreConfig selects and configures the remote record store
type StoreConfig struct {
	Kind    string // sql or rest
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DispatchConfig tunes the per-user data provider
type DispatchConfig struct {
	MaxLoadAttempts     int
	LoadRetryDelay      time.Duration
	PaymentRefetchDelay time.Duration
}

// LoggerConfig contains logger output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
