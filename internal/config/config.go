package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort         string
	AppEnv          string
	DbDriver        string
	DbHost          string
	DbPort          string
	DbUser          string
	DbPassword      string
	DbName          string
	DbParams        string
	DatabaseURL     string
	SqlitePath      string
	DbAutoMigrate   bool
	TrustedProxies  []string
	SessionStore    string
	SessionCookie   string
	SessionTTL      time.Duration
	SessionPrune    time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	BcryptCost      int
	LogLevel        string
	LogFormat       string
	LogOutput       string
	TranslationDir  string
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		AppEnv:          getEnv("APP_ENV", "development"),
		DbDriver:        getEnv("DB_DRIVER", "mysql"),
		DbHost:          getEnv("MYSQL_HOST", "db"),
		DbPort:          getEnv("MYSQL_PORT", "3306"),
		DbUser:          getEnv("MYSQL_USER", "todolist"),
		DbPassword:      getEnv("MYSQL_PASSWORD", "todolist"),
		DbName:          getEnv("MYSQL_DATABASE", "todolist"),
		DbParams:        getEnv("MYSQL_PARAMS", "parseTime=true&loc=UTC"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SqlitePath:      getEnv("SQLITE_PATH", "todolist.db"),
		DbAutoMigrate:   getEnvBool("DB_AUTO_MIGRATE", true),
		TrustedProxies:  parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		SessionStore:    getEnv("SESSION_STORE", "memory"),
		SessionCookie:   getEnv("SESSION_COOKIE_NAME", "todolist_session"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionPrune:    getEnvDuration("SESSION_PRUNE_INTERVAL", 24*time.Hour),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		BcryptCost:      getEnvInt("BCRYPT_COST", 12),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		LogOutput:       getEnv("LOG_OUTPUT", "stdout"),
		TranslationDir:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
