package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	URL           string
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	CORSOrigin string
}

// StorageConfig holds local asset storage configuration
type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// Missing .env is fine in production; variables come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		URL:           getEnv("DATABASE_URL", ""),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          dbPort,
		User:          getEnv("DB_USER", "postgres"),
		Password:      getEnv("DB_PASSWORD", ""),
		Name:          getEnv("DB_NAME", "tabacalera"),
		SSLMode:       getEnv("DB_SSL_MODE", "disable"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "false") == "true",
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "24h"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:5000/uploads"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.Password == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
