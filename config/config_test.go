package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(`
backend:
  url: http://backend.local
  rate_burst: 2
cors:
  allowed_origins: ["http://a.local", "http://b.local"]
entities:
  login_log:
    query: /custom/loginLog/list
`), 0o600)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
	viper.SetConfigFile(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != "http://backend.local" || cfg.Backend.RateBurst != 2 {
		t.Errorf("unexpected backend: %+v", cfg.Backend)
	}
	if cfg.Backend.Timeout != 10*time.Second || cfg.Session.TTL != 30*time.Minute || cfg.Notice.TTL != 3*time.Second {
		t.Errorf("defaults not applied: %+v %+v %+v", cfg.Backend, cfg.Session, cfg.Notice)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
	if got := cfg.Entities["login_log"].Query; got != "/custom/loginLog/list" {
		t.Errorf("unexpected override: %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a, b", "", " c "})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("unexpected: %v", got)
	}
}
