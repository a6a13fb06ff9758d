package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// SMTP relay (MAIL_*)
	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string
	MailTo       string
	MailLocale   string // locale of the report mailed to the firm
	MailTimeout  time.Duration
	BrandName    string
	// CORS
	CORSAllowedOrigins []string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
	// Append the underlying mail error to 500 responses
	ExposeErrorDetails bool
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development); the environment wins otherwise
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// SMTP Configuration
		MailHost:     getEnv("MAIL_HOST", ""),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUser:     getEnv("MAIL_USER", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "noreply@lll.com.hk"),
		MailTo:       getEnv("MAIL_TO", "leap@lll.com.hk"),
		MailLocale:   getEnv("MAIL_LOCALE", "en"),
		MailTimeout:  time.Duration(getEnvInt("MAIL_TIMEOUT_SECONDS", 15)) * time.Second,
		BrandName:    getEnv("BRAND_NAME", "LEAP by LLL"),
		// Browser origins allowed to post the forms
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"https://lll.com.hk",
			"https://www.lll.com.hk",
			"http://localhost:3000",
		}),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 5),   // 5 form posts per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		ExposeErrorDetails:       getEnvBool("EXPOSE_ERROR_DETAILS", false),
	}

	if cfg.MailHost == "" {
		log.Println("WARNING: MAIL_HOST is missing. Form submissions will be rejected.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList returns a comma separated environment variable or fallback if not set/empty
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
