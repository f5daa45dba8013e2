package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearMoodlogEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MOODLOG_CONFIG", "MOODLOG_DB_PATH", "MOODLOG_DEFAULT_RANGE", "MOODLOG_INSTRUMENTS_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Point XDG at an empty dir so a developer's real config is not read.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearMoodlogEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "" {
		t.Errorf("db_path = %q, want empty", cfg.DBPath)
	}
	if cfg.DefaultRange != "all" {
		t.Errorf("default_range = %q, want all", cfg.DefaultRange)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearMoodlogEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "db_path: /tmp/test.db\ndefault_range: week\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MOODLOG_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.DefaultRange != "week" {
		t.Errorf("default_range = %q, want week", cfg.DefaultRange)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearMoodlogEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_range: week\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MOODLOG_CONFIG", path)
	t.Setenv("MOODLOG_DEFAULT_RANGE", "month")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultRange != "month" {
		t.Errorf("default_range = %q, want month", cfg.DefaultRange)
	}
}

func TestLoadRejectsUnknownRange(t *testing.T) {
	clearMoodlogEnv(t)
	t.Setenv("MOODLOG_DEFAULT_RANGE", "fortnight")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown default_range")
	}
}

func TestXDGConfigPicked(t *testing.T) {
	clearMoodlogEnv(t)

	configHome := t.TempDir()
	dir := filepath.Join(configHome, "moodlog")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("default_range: year\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", configHome)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultRange != "year" {
		t.Errorf("default_range = %q, want year", cfg.DefaultRange)
	}
}
