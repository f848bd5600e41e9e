package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// mapLookup returns a LookupFunc backed by a map.
func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// TestApplyEnv tests environment overrides.
func TestApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := ApplyEnv(cfg, mapLookup(map[string]string{
			EnvBaseURL:   "http://env.local/list",
			EnvTimeout:   "2s",
			EnvUserAgent: "env-agent",
			EnvProxy:     "127.0.0.1:9050",
			EnvVerifyTLS: "true",
		}))
		if err != nil {
			t.Fatalf("ApplyEnv() error: %v", err)
		}
		if cfg.BaseURL != "http://env.local/list" || cfg.Timeout != 2*time.Second ||
			cfg.UserAgent != "env-agent" || cfg.ProxyAddress != "127.0.0.1:9050" || !cfg.VerifyTLS {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := ApplyEnv(cfg, mapLookup(map[string]string{EnvBaseURL: "", EnvTimeout: ""}))
		if err != nil {
			t.Fatalf("ApplyEnv() error: %v", err)
		}
		if cfg.BaseURL != DefaultBaseURL || cfg.Timeout != DefaultTimeout {
			t.Errorf("defaults changed: %+v", cfg)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Parallel()

		if err := ApplyEnv(NewConfig(), mapLookup(map[string]string{EnvTimeout: "fast"})); err == nil {
			t.Error("expected error for invalid timeout")
		}
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()

		if err := ApplyEnv(NewConfig(), mapLookup(map[string]string{EnvVerifyTLS: "maybe"})); err == nil {
			t.Error("expected error for invalid bool")
		}
	})
}

// TestEnvLookup tests reading a .env file.
func TestEnvLookup(t *testing.T) {
	t.Parallel()

	t.Run("missing file falls back to process environment", func(t *testing.T) {
		t.Parallel()

		lookup, err := EnvLookup(filepath.Join(t.TempDir(), ".env"))
		if err != nil {
			t.Fatalf("EnvLookup() error: %v", err)
		}
		if lookup == nil {
			t.Fatal("expected lookup function")
		}
	})

	t.Run("reads dotenv entries", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".env")
		content := "ROSTERSCAN_TEST_ONLY_KEY=from-dotenv\n# comment\nROSTERSCAN_TEST_QUOTED=\"quoted value\"\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		lookup, err := EnvLookup(path)
		if err != nil {
			t.Fatalf("EnvLookup() error: %v", err)
		}
		if v, ok := lookup("ROSTERSCAN_TEST_ONLY_KEY"); !ok || v != "from-dotenv" {
			t.Errorf("unexpected value %q (%v)", v, ok)
		}
		if v, _ := lookup("ROSTERSCAN_TEST_QUOTED"); v != "quoted value" {
			t.Errorf("unexpected quoted value %q", v)
		}
		if _, ok := lookup("ROSTERSCAN_TEST_ABSENT"); ok {
			t.Error("expected absent key to be missing")
		}
	})

	t.Run("unreadable path is an error", func(t *testing.T) {
		t.Parallel()

		if _, err := EnvLookup(t.TempDir()); err == nil {
			t.Error("expected error when .env path is a directory")
		}
	})
}
