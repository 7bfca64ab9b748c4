package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	LoginPage     string
	MenuPage      string
	DashboardPage string

	CaptchaTokenURL string
	CaptchaSiteKey  string

	RequestTimeout       time.Duration
	ThrottleWindow       time.Duration
	MaxLoginAttempts     int
	LockoutSeconds       int
	MaxRequestsPerMinute int

	StubAddr string
}

func Load() (*Config, error) {
	// a missing .env is fine, env vars alone are enough
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return &Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		LoginPage:     getEnv("LOGIN_PAGE", "login"),
		MenuPage:      getEnv("MENU_PAGE", "menu"),
		DashboardPage: getEnv("DASHBOARD_PAGE", "dashboard"),

		CaptchaTokenURL: getEnv("CAPTCHA_TOKEN_URL", ""),
		CaptchaSiteKey:  getEnv("CAPTCHA_SITE_KEY", ""),

		RequestTimeout:       time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		ThrottleWindow:       time.Duration(getEnvAsInt("FORM_THROTTLE_MS", 2000)) * time.Millisecond,
		MaxLoginAttempts:     getEnvAsInt("MAX_LOGIN_ATTEMPTS", 5),
		LockoutSeconds:       getEnvAsInt("LOGIN_LOCKOUT_SECONDS", 60),
		MaxRequestsPerMinute: getEnvAsInt("MAX_REQUESTS_PER_MINUTE", 100),

		StubAddr: getEnv("STUB_ADDR", ":8080"),
	}, nil
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
