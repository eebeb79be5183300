// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	Server       ServerConfig
	Log          LogConfig
	Catalog      CatalogConfig
	Export       ExportConfig
	AWS          AWSConfig
	Notification NotificationConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	I18n         I18nConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

type CatalogConfig struct {
	// ImageURLTemplate must contain one %s for the escaped image keyword.
	ImageURLTemplate    string
	DefaultImageKeyword string
}

type ExportConfig struct {
	LocalDir  string
	KeyPrefix string
	URLExpiry time.Duration
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	Endpoint        string
}

type NotificationConfig struct {
	AMQPURL        string
	Queue          string
	PublishTimeout time.Duration
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:     getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:     getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			ShutdownTimeout: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Catalog: CatalogConfig{
			ImageURLTemplate:    getEnv("CATALOG_IMAGE_URL_TEMPLATE", "https://nocode.meituan.com/photo/search?keyword=%s&width=400&height=300"),
			DefaultImageKeyword: getEnv("CATALOG_DEFAULT_IMAGE_KEYWORD", "product"),
		},
		Export: ExportConfig{
			LocalDir:  getEnv("EXPORT_LOCAL_DIR", "./exports"),
			KeyPrefix: getEnv("EXPORT_KEY_PREFIX", "exports/orders"),
			URLExpiry: getEnvAsDuration("EXPORT_URL_EXPIRY", 15*time.Minute),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", ""),
			Endpoint:        getEnv("AWS_S3_ENDPOINT", ""),
		},
		Notification: NotificationConfig{
			AMQPURL:        getEnv("AMQP_URL", ""),
			Queue:          getEnv("NOTIFICATION_QUEUE", "dashboard.notices"),
			PublishTimeout: getEnvAsDuration("NOTIFICATION_PUBLISH_TIMEOUT", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if strings.Count(c.Catalog.ImageURLTemplate, "%s") != 1 {
		return fmt.Errorf("CATALOG_IMAGE_URL_TEMPLATE must contain exactly one %%s")
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit must allow at least one request")
	}

	if c.AWS.S3Bucket != "" && c.AWS.AccessKeyID == "" && c.Environment == "production" {
		return fmt.Errorf("AWS credentials are required when AWS_S3_BUCKET is set in production")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
