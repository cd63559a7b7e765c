package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendFile || cfg.Storage.DataDir != "data" {
		t.Errorf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("expected 12h token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Analytics.StrictDates {
		t.Error("expected strict dates off by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAINTCHAIN_SERVER_PORT", "8081")
	t.Setenv("PAINTCHAIN_STORAGE_BACKEND", "memory")
	t.Setenv("PAINTCHAIN_ANALYTICS_STRICT_DATES", "true")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8081 || cfg.Storage.Backend != BackendMemory || !cfg.Analytics.StrictDates {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "paintchain.yaml")
	content := "server:\n  port: 9090\nlog:\n  level: debug\nrate_limit:\n  rps: 2\n  burst: 4\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Log.Level != "debug" || cfg.RateLimit.Burst != 4 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:    ServerConfig{Port: 5000},
		Storage:   StorageConfig{Backend: BackendFile, DataDir: "data"},
		RateLimit: RateLimitConfig{RPS: 1, Burst: 1},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "sqlite" }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"file backend without dir", func(c *Config) { c.Storage.DataDir = "" }, true},
		{"memory backend without dir", func(c *Config) { c.Storage.Backend = BackendMemory; c.Storage.DataDir = "" }, false},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
