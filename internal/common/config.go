package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Cache    CacheConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig holds document-store configuration
type StorageConfig struct {
	URL        string // store base URL
	ServiceKey string
	Bucket     string
}

// OCRConfig holds OCR provider configuration
type OCRConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// CacheConfig holds optional Redis cache configuration
type CacheConfig struct {
	Addr     string // empty disables the fast path
	Password string
	DB       int
	TTL      time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			URL:        getEnv("STORE_URL", ""),
			ServiceKey: getEnv("STORE_SERVICE_KEY", ""),
			Bucket:     getEnv("STORE_BUCKET", "audit-files"),
		},
		OCR: OCRConfig{
			APIKey:   getEnv("VISION_API_KEY", ""),
			Endpoint: getEnv("VISION_ENDPOINT", "https://vision.googleapis.com/v1/images:annotate"),
			Timeout:  getEnvAsDuration("VISION_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("DEEPSEEK_API_KEY", ""),
			BaseURL:     getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			Model:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			Temperature: getEnvAsFloat32("DEEPSEEK_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt("DEEPSEEK_MAX_TOKENS", 4000),
			Timeout:     getEnvAsDuration("DEEPSEEK_TIMEOUT", 90*time.Second),
		},
		Cache: CacheConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("CACHE_TTL", 24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration and fails fast on missing
// credentials, naming the offending variable.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.URL == "" {
		return NewAppError("CONFIG_ERROR", "STORE_URL is required", ErrInvalidInput)
	}
	if c.Storage.ServiceKey == "" {
		return NewAppError("CONFIG_ERROR", "STORE_SERVICE_KEY is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "DEEPSEEK_API_KEY is required", ErrInvalidInput)
	}
	if c.OCR.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "VISION_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
