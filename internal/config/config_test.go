package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("expected api key test-key, got %q", cfg.APIKey)
	}
	if cfg.Endpoint != "top-headlines" {
		t.Errorf("expected default endpoint top-headlines, got %q", cfg.Endpoint)
	}
	if cfg.Country != "us" {
		t.Errorf("expected default country us, got %q", cfg.Country)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %s", cfg.Timeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "test-key")
	t.Setenv("NEWSAPI_COUNTRY", "fr")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Country != "fr" {
		t.Errorf("expected country fr, got %q", cfg.Country)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", cfg.Timeout)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when NEWSAPI_KEY is unset")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "test-key")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}
