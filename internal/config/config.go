package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Storage StorageConfig
	MinIO   MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	// PublicBaseURL is the externally reachable origin of this API,
	// used to build image URLs for locally stored uploads.
	PublicBaseURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type StorageConfig struct {
	// Backend selects the media store: "local" or "minio"
	Backend string
	// LocalDir is the uploads directory for the local backend
	LocalDir string
	// MaxUploadBytes caps accepted image uploads
	MaxUploadBytes int64
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const defaultJWTSecret = "change-me-in-production"

// Load reads config from environment variables
func Load() (*Config, error) {
	port := getEnv("APP_PORT", "8080")

	cfg := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "Bookshelf API"),
			Environment:   getEnv("APP_ENV", "development"),
			Port:          port,
			Version:       getEnv("APP_VERSION", "1.0.0"),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", defaultJWTSecret),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 1),
		},
		Storage: StorageConfig{
			Backend:        getEnv("STORAGE_BACKEND", "local"),
			LocalDir:       getEnv("UPLOADS_DIR", "uploads"),
			MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 5)) * 1024 * 1024,
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "bookshelf"),
			UseSSL:    false,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for values that must not ship
func (c *Config) Validate() error {
	if c.App.Environment == "production" && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	switch c.Storage.Backend {
	case "local", "minio":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want local or minio)", c.Storage.Backend)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
