package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Paths.WorkDir != "." {
		t.Errorf("WorkDir = %q, want .", cfg.Paths.WorkDir)
	}
	if cfg.Paths.UploadsDir != filepath.Join("media", "uploads") {
		t.Errorf("UploadsDir = %q", cfg.Paths.UploadsDir)
	}
	if cfg.Paths.OutputsDir != filepath.Join("media", "outputs") {
		t.Errorf("OutputsDir = %q", cfg.Paths.OutputsDir)
	}
	if len(cfg.Paths.StaticDirs) != 2 {
		t.Fatalf("StaticDirs = %v", cfg.Paths.StaticDirs)
	}
	if cfg.Paths.Database != "db.sqlite3" {
		t.Errorf("Database = %q", cfg.Paths.Database)
	}
	if cfg.Retention.UploadMaxAge != 24*time.Hour {
		t.Errorf("UploadMaxAge = %v, want 24h", cfg.Retention.UploadMaxAge)
	}
	if cfg.Logging.File != "" {
		t.Errorf("default log file must be empty, got %q", cfg.Logging.File)
	}
	if cfg.Metrics.PushgatewayURL != "" {
		t.Errorf("push disabled by default, got %q", cfg.Metrics.PushgatewayURL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WORK_DIR", "/srv/app")
	t.Setenv("UPLOAD_RETENTION", "48h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := FromEnv()

	if cfg.Paths.UploadsDir != filepath.Join("/srv/app", "media", "uploads") {
		t.Errorf("UploadsDir = %q", cfg.Paths.UploadsDir)
	}
	if cfg.Retention.UploadMaxAge != 48*time.Hour {
		t.Errorf("UploadMaxAge = %v", cfg.Retention.UploadMaxAge)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestParseHelpers(t *testing.T) {
	if parseInt("not-a-number", 7) != 7 {
		t.Error("parseInt did not fall back to default")
	}
	if parseDuration("bogus", time.Minute) != time.Minute {
		t.Error("parseDuration did not fall back to default")
	}
	for _, v := range []string{"1", "true", "YES", " on "} {
		if !parseBool(v) {
			t.Errorf("parseBool(%q) = false", v)
		}
	}
	if parseBool("off") {
		t.Error("parseBool(off) = true")
	}
}
