package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is loaded once at process start and passed by reference into every
// component that needs it. Nothing reads the environment after Load returns.
type Config struct {
	ServerPort string
	ServerEnv  string

	AppID     string
	JWTSecret string

	DB         DBConfig
	Cloudinary CloudinaryConfig
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Could not load .env file (this is normal in production)")
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerEnv:  getEnv("SERVER_ENV", EnvDevelopment),
		AppID:      os.Getenv("APP_ID"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    os.Getenv("CLOUDINARY_FOLDER"),
		},
	}

	if cfg.AppID == "" {
		return nil, fmt.Errorf("APP_ID environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.DB.Host == "" || cfg.DB.Name == "" || cfg.DB.User == "" {
		return nil, fmt.Errorf("DB_HOST, DB_NAME and DB_USER environment variables are required")
	}

	return cfg, nil
}

func (c *Config) Development() bool {
	return c.ServerEnv != EnvProduction
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
