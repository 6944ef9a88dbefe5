package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Client   ClientConfig
	Receipts ReceiptConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
	CatalogDir  string // static catalog JSON served under /data
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ClientConfig configures the ordering client: where the static catalog
// lives, where the cart is persisted, and where orders are submitted.
type ClientConfig struct {
	CatalogBaseURL  string
	OrderServiceURL string
	CartBackend     string // file, redis
	CartPath        string // used by the file backend
	CartKey         string // used by the redis backend
}

type ReceiptConfig struct {
	Dir           string
	RetentionDays int
	CleanupSpec   string // cron expression for the retention sweep
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "5000"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
			CatalogDir:  getEnv("CATALOG_DIR", "data"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "wempy_orders"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Client: ClientConfig{
			CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "http://127.0.0.1:5000/data"),
			OrderServiceURL: getEnv("ORDER_SERVICE_URL", "http://127.0.0.1:5000"),
			CartBackend:     getEnv("CART_BACKEND", "file"),
			CartPath:        getEnv("CART_PATH", "wempy_cart.json"),
			CartKey:         getEnv("CART_KEY", "wempyCart"),
		},
		Receipts: ReceiptConfig{
			Dir:           getEnv("RECEIPTS_DIR", "orders"),
			RetentionDays: getEnvInt("RECEIPTS_RETENTION_DAYS", 90),
			CleanupSpec:   getEnv("RECEIPTS_CLEANUP_SPEC", "0 4 * * *"),
		},
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return n
}
