package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host default = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment default = %q, want %q", cfg.Environment, "development")
	}
	if !cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled default should be true")
	}
	if cfg.RateLimit.RPS != 20 || cfg.RateLimit.Burst != 40 {
		t.Errorf("RateLimit defaults = %v/%d, want 20/40", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level default = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("JITEN_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("JITEN_PORT", "not-a-port")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default %d for unparseable env", cfg.Server.Port, 8080)
	}
}

func TestConfig_HostAndStaticDirEnvOverrides(t *testing.T) {
	t.Setenv("JITEN_HOST", "127.0.0.1")
	t.Setenv("JITEN_STATIC_DIR", "/srv/jiten/public")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.StaticDir != "/srv/jiten/public" {
		t.Errorf("Server.StaticDir = %q, want %q", cfg.Server.StaticDir, "/srv/jiten/public")
	}
}

func TestConfig_LogLevelEnvOverride(t *testing.T) {
	t.Setenv("JITEN_LOG_LEVEL", "debug")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestConfig_RateLimitEnvOverrides(t *testing.T) {
	t.Setenv("JITEN_RATELIMIT_ENABLED", "false")
	t.Setenv("JITEN_RATELIMIT_RPS", "5.5")
	t.Setenv("JITEN_RATELIMIT_BURST", "10")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled should be false after env override")
	}
	if cfg.RateLimit.RPS != 5.5 {
		t.Errorf("RateLimit.RPS = %v, want 5.5", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != 10 {
		t.Errorf("RateLimit.Burst = %d, want 10", cfg.RateLimit.Burst)
	}
}

func TestConfig_RateLimitEnvInvalidIgnored(t *testing.T) {
	t.Setenv("JITEN_RATELIMIT_RPS", "-3")
	t.Setenv("JITEN_RATELIMIT_BURST", "zero")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.RateLimit.RPS != 20 {
		t.Errorf("RateLimit.RPS = %v, want default 20 for non-positive env", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.Burst != 40 {
		t.Errorf("RateLimit.Burst = %d, want default 40 for unparseable env", cfg.RateLimit.Burst)
	}
}

func TestLoadConfig_FileMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jiten.toml")
	content := `environment = "production"

[server]
port = 9000

[logging]
level = "warn"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "production")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	// Fields absent from the file keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadConfig should skip missing files, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default", cfg.Server.Port)
	}
}

func TestLoadConfig_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should fail on unparseable TOML")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"prod", true},
		{"PROD", true},
		{" Production ", true},
		{"development", false},
		{"dev", false},
		{"", false},
	}
	for _, tt := range tests {
		cfg := &Config{Environment: tt.env}
		if got := cfg.IsProduction(); got != tt.want {
			t.Errorf("IsProduction(%q) = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := NewDefaultConfig()
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want %q", got, "0.0.0.0:8080")
	}
}
