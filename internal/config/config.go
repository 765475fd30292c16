// Package config loads the backend configuration from the environment. A
// .env file in the working directory is read first if present.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port    string
	BaseURL string // external base URL, used in password reset links

	// Database
	DBPath string

	// Auth
	SecretKey       string
	SessionValidity time.Duration

	// Outbound mail
	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string
}

// Load reads the configuration. Values not set in the environment fall
// back to development defaults.
func Load() *Config {
	// A missing .env file is fine, the environment is authoritative anyway
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),

		DBPath: getEnv("DB_PATH", "data/centsible.db"),

		SecretKey:       getEnv("SECRET_KEY", randomSecret()),
		SessionValidity: getEnvDuration("SESSION_VALIDITY", 24*time.Hour),

		MailHost:     getEnv("MAIL_SERVER", "smtp.gmail.com"),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUsername: getEnv("MAIL_USERNAME", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
	}

	cfg.MailFrom = getEnv("MAIL_DEFAULT_SENDER", cfg.MailUsername)

	return cfg
}

// randomSecret is the fallback signing key when SECRET_KEY is not set.
// Sessions signed with it do not survive a restart.
func randomSecret() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return parsed
}
