package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	ModeLine = "line"
	ModeTUI  = "tui"
)

type Config struct {
	Environment         string
	LogLevel            slog.Level
	ConsoleMode         string
	ConsoleWidth        int
	RedisURL            string // Empty disables the event feed
	EventsChannelPrefix string
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		LogLevel:            parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		ConsoleMode:         parseMode(getEnv("CONSOLE_MODE", ModeLine)),
		ConsoleWidth:        parseWidth(getEnv("CONSOLE_WIDTH", "72")),
		RedisURL:            getEnv("REDIS_URL", ""),
		EventsChannelPrefix: getEnv("EVENTS_CHANNEL_PREFIX", "detective:events:"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func parseMode(mode string) string {
	if strings.ToLower(mode) == ModeTUI {
		return ModeTUI
	}
	return ModeLine
}

func parseWidth(s string) int {
	w, err := strconv.Atoi(s)
	if err != nil || w < 20 {
		return 72
	}
	return w
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
