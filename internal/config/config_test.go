package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DATA_BASE_URL", "https://example.com/league")

	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.DataSource.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", c.DataSource.FetchTimeout)
	}
	if c.DataSource.LoadConcurrency != 4 {
		t.Errorf("LoadConcurrency = %d, want 4", c.DataSource.LoadConcurrency)
	}
	if c.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", c.HTTP.Addr)
	}
	if c.Scheduler.RefreshInterval != 30*time.Minute {
		t.Errorf("RefreshInterval = %v", c.Scheduler.RefreshInterval)
	}
	if c.TelegramBot.Enabled() {
		t.Error("bot should be disabled without a token")
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("DATA_BASE_URL", "https://example.com/league")
	t.Setenv("DATA_FETCH_TIMEOUT", "3s")
	t.Setenv("TELEGRAM_TOKEN", "abc")
	t.Setenv("CHAT_ID", "-1001")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.DataSource.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v, want 3s", c.DataSource.FetchTimeout)
	}
	if !c.TelegramBot.Enabled() || c.TelegramBot.ChatID != -1001 {
		t.Errorf("TelegramBot = %+v", c.TelegramBot)
	}
	if len(c.HTTP.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", c.HTTP.AllowedOrigins)
	}
}

func TestNew_MissingBaseURL(t *testing.T) {
	t.Setenv("DATA_BASE_URL", "")
	os.Unsetenv("DATA_BASE_URL")
	if _, err := New(); err == nil {
		t.Error("expected error when DATA_BASE_URL is empty")
	}
}
