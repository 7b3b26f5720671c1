package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Debug       bool
	DBDriver    string // mysql or sqlite
	DatabaseURL string
	JWTSecret   string

	// File storage
	StorageDriver string // local or minio
	PublicDir     string

	// Seed credentials for the admin account
	AdminEmail    string
	AdminPassword string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// MinIO (when StorageDriver == "minio")
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioBaseURL   string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	debug, _ := strconv.ParseBool(getEnv("APP_DEBUG", "false"))
	minioSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Debug:       debug,
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/pesisir?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		PublicDir:     getEnv("PUBLIC_DIR", "public/storage"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@pesisir.id"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@pesisir.id"),
		FromName:     getEnv("FROM_NAME", "Pesisir"),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "pesisir"),
		MinioUseSSL:    minioSSL,
		MinioBaseURL:   getEnv("MINIO_PUBLIC_BASE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
