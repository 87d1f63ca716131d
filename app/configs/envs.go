package configs

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultSplineURL = "https://my.spline.design/nexbotrobotcharacterconcept-U710QbcCaueudeie1QgVOCuU/"

type ENV struct {
	Port    string
	APP_URL string
	APP_ENV string

	DBEngine     string
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	DBMaxRetries int
	DBRetryDelay time.Duration

	LogLevel  slog.Level
	LogFormat string

	MediaURL       string
	MediaRoot      string
	PageSize       int
	PhoneMinDigits int
	PhoneMaxDigits int

	SplineDefaultURL   string
	SplineProxyTimeout time.Duration

	AdminAPIKey string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		Port:    getEnv("APP_PORT", ":8000"),
		APP_URL: os.Getenv("APP_URL"),
		APP_ENV: getEnv("APP_ENV", "development"),

		DBEngine:     strings.ToLower(getEnv("DB_ENGINE", "mysql")),
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "robotics"),
		DBPort:       os.Getenv("DB_PORT"),
		DBMaxRetries: getEnvInt("DB_MAX_RETRIES", 10),
		DBRetryDelay: getEnvDuration("DB_RETRY_DELAY", 5*time.Second),

		LogLevel:  parseLogLevel(os.Getenv("LOG_LEVEL")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),

		MediaURL:       getEnv("MEDIA_URL", "/media/"),
		MediaRoot:      os.Getenv("MEDIA_ROOT"),
		PageSize:       getEnvInt("PAGE_SIZE", 12),
		PhoneMinDigits: getEnvInt("PHONE_MIN_DIGITS", 7),
		PhoneMaxDigits: getEnvInt("PHONE_MAX_DIGITS", 15),

		SplineDefaultURL:   getEnv("SPLINE_DEFAULT_URL", DefaultSplineURL),
		SplineProxyTimeout: getEnvDuration("SPLINE_PROXY_TIMEOUT", 15*time.Second),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:     getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if !strings.HasPrefix(env.Port, ":") && !strings.Contains(env.Port, ":") {
		env.Port = ":" + env.Port
	}
	if !strings.HasSuffix(env.MediaURL, "/") {
		env.MediaURL += "/"
	}
	if env.PageSize < 1 {
		env.PageSize = 12
	}
	if env.PhoneMinDigits < 1 || env.PhoneMaxDigits < env.PhoneMinDigits {
		log.Printf("LoadEnv: invalid phone digit bounds [%d,%d], using [7,15]", env.PhoneMinDigits, env.PhoneMaxDigits)
		env.PhoneMinDigits, env.PhoneMaxDigits = 7, 15
	}

	return env
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("getEnvInt: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// getEnvDuration accepts Go durations ("15s") and plain seconds ("15").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("getEnvDuration: %s=%q is not a duration, using %s", key, v, fallback)
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
