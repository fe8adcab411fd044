package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "JWT_EXPIRY", "BOOTSTRAP_ADMIN_ENABLED", "REDIS_URL", "REFRESH_SCORES_CRON"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Store.Driver != "" {
		t.Errorf("expected explicit empty driver to be kept, got %q", cfg.Store.Driver)
	}
	if cfg.JWT.AccessTokenExpiry != 8*time.Hour {
		t.Errorf("expected unparseable expiry to fall back to 8h, got %v", cfg.JWT.AccessTokenExpiry)
	}
	if !cfg.Bootstrap.Enabled {
		t.Error("expected unparseable bool to fall back to true")
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected empty redis url to disable the cache, got %q", cfg.Redis.URL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverMongo)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCORE_CACHE_TTL", "30s")
	t.Setenv("BOOTSTRAP_ADMIN_ENABLED", "false")
	t.Setenv("LOGIN_RATE_LIMIT", "not-a-number")

	cfg := Load()

	if cfg.Store.Driver != StoreDriverMongo {
		t.Errorf("expected mongo driver, got %q", cfg.Store.Driver)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Redis.CacheTTL != 30*time.Second {
		t.Errorf("expected ttl 30s, got %v", cfg.Redis.CacheTTL)
	}
	if cfg.Bootstrap.Enabled {
		t.Error("expected bootstrap to be disabled")
	}
	if cfg.Server.LoginLimit != 5 {
		t.Errorf("expected invalid limit to fall back to 5, got %d", cfg.Server.LoginLimit)
	}
}
