package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hitoshi/userquery/internal/metrics"
	"github.com/hitoshi/userquery/internal/model"
)

// Config はライブラリ全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Logging
	LogLevel slog.Level

	// Metrics
	MetricsEnabled   bool
	MetricsNamespace string
}

// Load は環境変数からConfigを読み込む。
// 値の解釈に失敗した場合はエラーを返す。
func Load() (*Config, error) {
	cfg := &Config{}

	level, err := parseLogLevel(getEnvString("USERQUERY_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	cfg.MetricsEnabled = getEnvBool("USERQUERY_METRICS_ENABLED", true)
	cfg.MetricsNamespace = getEnvString("USERQUERY_METRICS_NAMESPACE", metrics.DefaultNamespace)

	return cfg, nil
}

func parseLogLevel(v string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, model.NewInvalidLogLevelError(v)
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
