package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	Port        string
	Env         string
	JWTSecret   string
	GeminiKey   string
	SubmitDelay time.Duration

	// AdminPassword gates the dashboard with a single shared plaintext
	// password. This is a placeholder, not a security boundary.
	AdminPassword string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
}

// Load reads configuration from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		JWTSecret:     getEnv("JWT_SECRET", "solid_secret_key"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
	}

	cfg.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))

	delayMS := 1500
	if v := os.Getenv("SUBMIT_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			delayMS = n
		}
	}
	cfg.SubmitDelay = time.Duration(delayMS) * time.Millisecond

	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
