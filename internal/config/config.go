package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DatabaseType string
	DatabasePath string
	DatabaseURL  string

	// Published spreadsheet tabs, one CSV export URL per language
	SheetURLs map[string]string

	SpotifyClientID     string
	SpotifyClientSecret string

	// Secret for signing the anonymous player identity cookie
	JWTSecret      string
	PlayerTokenTTL time.Duration

	// Puzzle gap alerting via SES; disabled when FromEmail is empty
	AWSRegion  string
	FromEmail  string
	AlertEmail string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		DatabaseType: getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath: getEnv("DB_PATH", "./anthyakshari.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),

		SheetURLs: map[string]string{
			"telugu": getEnv("SHEET_URL_TELUGU", ""),
			"tamil":  getEnv("SHEET_URL_TAMIL", ""),
			"hindi":  getEnv("SHEET_URL_HINDI", ""),
		},

		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),

		JWTSecret:      getEnv("JWT_SECRET", "dev-only-secret"),
		PlayerTokenTTL: 365 * 24 * time.Hour,

		AWSRegion:  getEnv("AWS_REGION", "eu-west-1"),
		FromEmail:  getEnv("SES_FROM_EMAIL", ""),
		AlertEmail: getEnv("ALERT_EMAIL", ""),
	}
}

// Languages returns the configured language codes in a stable order
func (c *Config) Languages() []string {
	langs := make([]string, 0, len(c.SheetURLs))
	for _, code := range []string{"telugu", "tamil", "hindi"} {
		if _, ok := c.SheetURLs[code]; ok {
			langs = append(langs, code)
		}
	}
	return langs
}

// IsSupportedLanguage reports whether a language code has a configured feed
func (c *Config) IsSupportedLanguage(code string) bool {
	_, ok := c.SheetURLs[strings.ToLower(code)]
	return ok
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
