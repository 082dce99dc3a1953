package config

import (
	"os"
	"strconv"
	"strings"
)

// Config collects every environment knob the app reads. main loads .env via
// godotenv before calling Load, so plain os.Getenv is enough here.
type Config struct {
	Port string

	// Persistence: empty MongoURI means the in-memory store.
	MongoURI      string
	MongoDatabase string

	JWTSecret    string
	AllowOrigins []string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	AdminEmail   string

	UploadDir string

	// Optional S3 storage for product photos; empty endpoint keeps photos
	// on local disk under UploadDir.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	CDNDomain   string
}

func Load() Config {
	return Config{
		Port:          envOr("PORT", "1414"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: envOr("MONGO_DATABASE", "quickcash"),
		JWTSecret:     envOr("JWT_SECRET", "quick_cash_secret_key"),
		AllowOrigins:  splitList(envOr("CORS_ORIGINS", "*")),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      envIntOr("SMTP_PORT", 465),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      envOr("MAIL_FROM", "noreply@quickcashcontrol.com"),
		AdminEmail:    envOr("ADMIN_EMAIL", "admin@example.com"),
		UploadDir:     envOr("UPLOAD_DIR", "./uploads"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CDNDomain:     os.Getenv("CDN_DOMAIN"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
