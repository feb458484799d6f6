package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("PA_DB", "/tmp/pa.db")
	t.Setenv("PA_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("PA_DEV_MODE", "true")
	t.Setenv("PA_PORT", "9090")
	t.Setenv("PA_SERVER_URL", "http://example:9090")
	t.Setenv("PA_PROJECT", "gift-city-tower")

	cfg := FromEnv()
	want := Config{
		DBPath:      "/tmp/pa.db",
		CatalogPath: "/tmp/catalog.yaml",
		DevMode:     true,
		Port:        9090,
		ServerURL:   "http://example:9090",
		Project:     "gift-city-tower",
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PA_DB", "PA_CATALOG", "PA_DEV_MODE", "PA_PORT", "PA_SERVER_URL", "PA_PROJECT"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DevMode {
		t.Error("dev mode should default to off")
	}
	if cfg.DBPath != "" || cfg.Project != "" {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 8080},
		{"valid", "3000", 3000},
		{"not a number", "abc", 8080},
		{"negative", "-1", 8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PA_TEST_PORT", tt.value)
			if got := envInt("PA_TEST_PORT", 8080); got != tt.want {
				t.Errorf("envInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PA_PROJECT=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// godotenv never overrides a set variable, so start from unset.
	t.Setenv("PA_PROJECT", "")
	if err := os.Unsetenv("PA_PROJECT"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	if got := Load().Project; got != "from-dotenv" {
		t.Errorf("project = %q, want from-dotenv", got)
	}
}
