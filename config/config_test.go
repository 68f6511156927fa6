package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_ID", "12345")
	t.Setenv("API_HASH", "abcdef")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Telegram.APIID != 12345 {
		t.Errorf("Expected APIID 12345, got %d", cfg.Telegram.APIID)
	}

	if cfg.Telegram.SessionFile != "tg.session.json" {
		t.Errorf("Expected default session file, got %q", cfg.Telegram.SessionFile)
	}

	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "http://localhost:5174" {
		t.Errorf("Expected default CORS origin, got %v", cfg.HTTP.CORSOrigins)
	}

	if len(cfg.News.DefaultChannels) != 0 {
		t.Errorf("Expected no default channels, got %v", cfg.News.DefaultChannels)
	}

	if cfg.News.FetchTimeout != 30*time.Second {
		t.Errorf("Expected 30s fetch timeout, got %v", cfg.News.FetchTimeout)
	}
}

func TestLoad_ChannelAndOriginLists(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TG_CHANNELS", " durov, telegram ,, @news ")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	wantChannels := []string{"durov", "telegram", "@news"}
	if len(cfg.News.DefaultChannels) != len(wantChannels) {
		t.Fatalf("Expected %d channels, got %v", len(wantChannels), cfg.News.DefaultChannels)
	}
	for i, ch := range wantChannels {
		if cfg.News.DefaultChannels[i] != ch {
			t.Errorf("Channel %d: expected %q, got %q", i, ch, cfg.News.DefaultChannels[i])
		}
	}

	if len(cfg.HTTP.CORSOrigins) != 2 {
		t.Errorf("Expected 2 CORS origins, got %v", cfg.HTTP.CORSOrigins)
	}
}

func TestLoad_MissingAPIID(t *testing.T) {
	t.Setenv("API_ID", "")
	t.Setenv("API_HASH", "abcdef")

	if _, err := Load(); err == nil {
		t.Error("Expected error for missing API_ID, got nil")
	}
}

func TestLoad_MissingAPIHash(t *testing.T) {
	t.Setenv("API_ID", "12345")
	t.Setenv("API_HASH", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error for missing API_HASH, got nil")
	}
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FETCH_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid FETCH_TIMEOUT, got nil")
	}
}
