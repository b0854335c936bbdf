package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Driver != StorageDriverSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Gemini.Timeout != 10*time.Second {
		t.Errorf("expected 10s gemini timeout, got %s", cfg.Gemini.Timeout)
	}
	if cfg.Report.LookbackDays != 7 {
		t.Errorf("expected 7 lookback days, got %d", cfg.Report.LookbackDays)
	}
	if cfg.Report.Schedule != "0 9 * * MON" {
		t.Errorf("unexpected schedule %q", cfg.Report.Schedule)
	}
	if cfg.Gemini.Temperature != 0.2 {
		t.Errorf("expected 0.2 temperature, got %v", cfg.Gemini.Temperature)
	}
}

func TestLoad_ZeroTemperature(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_TEMPERATURE", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.Temperature != 0 {
		t.Errorf("expected temperature 0 from env, got %v", cfg.Gemini.Temperature)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("WEBHOOK_ALLOWED_IPS", "10.0.0.1, 10.0.0.0/24 ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("expected api key from env, got %q", cfg.Gemini.APIKey)
	}
	if len(cfg.Webhook.AllowedIPs) != 2 {
		t.Errorf("expected 2 allowed IPs, got %v", cfg.Webhook.AllowedIPs)
	}
}

func TestLoad_SheetsRequiresSpreadsheet(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", StorageDriverSheets)

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for sheets driver without spreadsheet id")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b,c ")
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("unexpected split result %v", got)
	}
	if splitList("") != nil {
		t.Errorf("expected nil for empty input")
	}
}
