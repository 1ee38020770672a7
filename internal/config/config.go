// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig
	Server  ServerConfig
	Logging LoggingConfig
	CORS    CORSConfig
	Search  SearchConfig
	Payment PaymentConfig
}

// StorageConfig holds settings for the state storage medium
type StorageConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// SearchConfig holds search settings
type SearchConfig struct {
	DebounceWindow time.Duration
}

// PaymentConfig holds settings for the payment collaborator
type PaymentConfig struct {
	MerchantName string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Storage configuration. SQLite keeps all state in a local file and is the
	// default; MySQL suits a shared deployment.
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverMySQL && driver != DriverSQLite {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: %s", driver)
	}
	cfg.Storage.Driver = driver

	if driver == DriverSQLite {
		sqlitePath := os.Getenv("SQLITE_PATH")
		if sqlitePath == "" {
			sqlitePath = "mlearn.db"
		}
		cfg.Storage.SQLitePath = sqlitePath
	} else {
		dbHost := os.Getenv("DB_HOST")
		if dbHost == "" {
			return nil, fmt.Errorf("DB_HOST is required")
		}
		cfg.Storage.Host = dbHost

		dbPortStr := os.Getenv("DB_PORT")
		if dbPortStr == "" {
			return nil, fmt.Errorf("DB_PORT is required")
		}
		dbPort, err := strconv.Atoi(dbPortStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.Storage.Port = dbPort

		dbUser := os.Getenv("DB_USER")
		if dbUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
		cfg.Storage.User = dbUser

		dbPassword := os.Getenv("DB_PASSWORD")
		if dbPassword == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
		cfg.Storage.Password = dbPassword

		dbName := os.Getenv("DB_NAME")
		if dbName == "" {
			return nil, fmt.Errorf("DB_NAME is required")
		}
		cfg.Storage.DBName = dbName
	}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Search debounce window (default: 300ms)
	debounceStr := os.Getenv("SEARCH_DEBOUNCE_WINDOW")
	if debounceStr == "" {
		debounceStr = "300ms"
	}
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE_WINDOW: %w", err)
	}
	cfg.Search.DebounceWindow = debounce

	// Payment configuration
	merchantName := os.Getenv("PAYMENT_MERCHANT_NAME")
	if merchantName == "" {
		merchantName = "MLearn"
	}
	cfg.Payment.MerchantName = merchantName

	return cfg, nil
}

// DSN returns the connection string for the configured storage driver
func (c *Config) DSN() string {
	if c.Storage.Driver == DriverSQLite {
		return c.Storage.SQLitePath
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Storage.User,
		c.Storage.Password,
		c.Storage.Host,
		c.Storage.Port,
		c.Storage.DBName,
	)
}
