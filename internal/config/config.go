package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret string

	// External identity-change service (authoritative for email/password).
	BackendAuthURL string
	BackendAuthKey string

	// AppKey is the 32-byte key used to encrypt withdrawal destinations.
	AppKey string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string

	// UploadDir is the root for per-user profile pictures.
	UploadDir string

	// AllowedAdminCIDRs restricts admin endpoints to these networks when
	// non-empty.
	AllowedAdminCIDRs []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "networkx"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		BackendAuthURL:    getEnv("BACKEND_AUTH_BASE_URI", ""),
		BackendAuthKey:    getEnv("BACKEND_AUTH_KEY", ""),
		AppKey:            getEnv("APP_KEY", ""),
		SMTPHost:          getEnv("SMTP_HOST", "localhost"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPass:          getEnv("SMTP_PASSWORD", ""),
		MailFrom:          getEnv("MAIL_FROM", "no-reply@networkx.io"),
		UploadDir:         getEnv("UPLOAD_DIR", "storage/profile/picture"),
		AllowedAdminCIDRs: splitList(getEnv("ADMIN_ALLOWED_CIDRS", "")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
