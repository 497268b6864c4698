// Package config собирает настройки приложения из переменных окружения.
package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	DBPath       string // путь к локальному bbolt-файлу
	ProbeURL     string // URL для проверки доступности сети
	ForceOffline bool   // PASSVAULT_OFFLINE=1: работать только с локальным кэшем
	LogLevel     slog.Level
}

func Load() *Config {
	return &Config{
		MongoURI:     getEnv("PASSVAULT_MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("PASSVAULT_MONGO_DB", "passvault"),
		DBPath:       getEnv("PASSVAULT_DB_PATH", "passvault.db"),
		ProbeURL:     getEnv("PASSVAULT_PROBE_URL", "https://www.google.com/generate_204"),
		ForceOffline: parseBool(getEnv("PASSVAULT_OFFLINE", "")),
		LogLevel:     parseLogLevel(getEnv("PASSVAULT_LOG_LEVEL", "info")),
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
