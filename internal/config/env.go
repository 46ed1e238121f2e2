package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level      string
	Pretty     bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// AxiomConfig holds Axiom log-forwarding configuration.
type AxiomConfig struct {
	Send          bool
	APIKey        string
	OrgID         string
	Dataset       string
	FlushInterval time.Duration
}

// PathsConfig fixes the deployment-tree layout the janitor operates on.
// Everything is derived from WorkDir.
type PathsConfig struct {
	WorkDir    string
	MediaRoot  string
	UploadsDir string
	OutputsDir string
	StaticDirs []string
	LogsDir    string
	TempDir    string
	Database   string
}

// RetentionConfig holds age thresholds for pruning.
type RetentionConfig struct {
	UploadMaxAge time.Duration
}

// MetricsConfig holds Pushgateway settings for the one-shot run.
type MetricsConfig struct {
	PushgatewayURL string
	JobName        string
}

// Config is the top-level configuration.
type Config struct {
	Logging   LoggingConfig
	Axiom     AxiomConfig
	Paths     PathsConfig
	Retention RetentionConfig
	Metrics   MetricsConfig
}

// FromEnv loads configuration from environment with sensible defaults.
// With no environment set, the defaults reproduce the deploy layout the
// janitor was written for: media/{uploads,outputs}, static, staticfiles,
// logs, temp and db.sqlite3 under the current directory.
func FromEnv() Config {
	cfg := Config{}

	// Logging defaults. No log file by default: the janitor deletes *.log
	// files under its working tree and must not feed its own sweep.
	cfg.Logging = LoggingConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		Pretty:     parseBool(getEnv("LOG_PRETTY", devDefaultPretty())),
		File:       getEnv("LOG_FILE", ""),
		MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
		MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "10"), 10),
		MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "30"), 30),
		Compress:   parseBool(getEnv("LOG_COMPRESS", "true")),
	}

	// Axiom defaults
	baseDataset := getEnv("AXIOM_DATASET", "dev")
	cfg.Axiom = AxiomConfig{
		Send:          parseBool(getEnv("SEND_LOGS_TO_AXIOM", "0")),
		APIKey:        getEnv("AXIOM_API_KEY", ""),
		OrgID:         getEnv("AXIOM_ORG_ID", ""),
		Dataset:       baseDataset + "_deployjanitor",
		FlushInterval: parseDuration(getEnv("AXIOM_FLUSH_INTERVAL", "10s"), 10*time.Second),
	}

	// Deployment-tree layout
	work := getEnv("WORK_DIR", ".")
	media := filepath.Join(work, "media")
	cfg.Paths = PathsConfig{
		WorkDir:    work,
		MediaRoot:  media,
		UploadsDir: filepath.Join(media, "uploads"),
		OutputsDir: filepath.Join(media, "outputs"),
		StaticDirs: []string{filepath.Join(work, "static"), filepath.Join(work, "staticfiles")},
		LogsDir:    filepath.Join(work, "logs"),
		TempDir:    filepath.Join(work, "temp"),
		Database:   filepath.Join(work, "db.sqlite3"),
	}

	// Retention defaults
	cfg.Retention = RetentionConfig{
		UploadMaxAge: parseDuration(getEnv("UPLOAD_RETENTION", "24h"), 24*time.Hour),
	}

	// Metrics defaults: push only when a gateway is configured
	cfg.Metrics = MetricsConfig{
		PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
		JobName:        getEnv("PUSH_JOB_NAME", "deployjanitor"),
	}

	return cfg
}

// Helpers
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func parseBool(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}

func devDefaultPretty() string {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if env == "dev" || env == "development" || env == "local" {
		return "true"
	}
	return "false"
}
