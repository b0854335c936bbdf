package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Classification
	Gemini     GeminiConfig
	Classifier ClassifierConfig

	// Storage
	Storage StorageConfig

	// Transport
	Telegram TelegramConfig
	Webhook  WebhookConfig

	// Weekly digest
	Report ReportConfig

	Timezone string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds the model endpoint and generation parameters.
type GeminiConfig struct {
	APIKey          string
	Model           string
	APIURL          string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
	Timeout         time.Duration
}

// ClassifierConfig tunes the circuit breaker in front of the model call.
type ClassifierConfig struct {
	BreakerEnabled   bool
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

type StorageConfig struct {
	Driver     string // "sqlite" or "sheets"
	SQLitePath string
	Sheets     SheetsConfig
}

type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsPath string
	UsersSheet      string
	ExerciseSheet   string
	FoodSheet       string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

type ReportConfig struct {
	Enabled      bool
	Schedule     string
	LookbackDays int
}

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverSheets = "sheets"
)

// Load loads configuration using Viper.
// A .env file in the working directory is applied first, then config.yaml
// is searched in ./config, ., /etc/app/.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Timezone = viper.GetString("timezone")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.TopP = viper.GetFloat64("gemini.top_p")
	cfg.Gemini.TopK = viper.GetInt("gemini.top_k")
	cfg.Gemini.MaxOutputTokens = viper.GetInt("gemini.max_output_tokens")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	// Classifier
	cfg.Classifier.BreakerEnabled = viper.GetBool("classifier.breaker_enabled")
	cfg.Classifier.FailureThreshold = viper.GetUint32("classifier.failure_threshold")
	cfg.Classifier.OpenTimeout = viper.GetDuration("classifier.open_timeout")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	cfg.Storage.Sheets.SpreadsheetID = viper.GetString("storage.sheets.spreadsheet_id")
	cfg.Storage.Sheets.CredentialsPath = viper.GetString("storage.sheets.credentials_path")
	if sheetsCreds := viper.GetString("google_application_credentials"); sheetsCreds != "" && cfg.Storage.Sheets.CredentialsPath == "" {
		cfg.Storage.Sheets.CredentialsPath = sheetsCreds
	}
	cfg.Storage.Sheets.UsersSheet = viper.GetString("storage.sheets.users_sheet")
	cfg.Storage.Sheets.ExerciseSheet = viper.GetString("storage.sheets.exercise_sheet")
	cfg.Storage.Sheets.FoodSheet = viper.GetString("storage.sheets.food_sheet")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))

	// Report
	cfg.Report.Enabled = viper.GetBool("report.enabled")
	cfg.Report.Schedule = viper.GetString("report.schedule")
	cfg.Report.LookbackDays = viper.GetInt("report.lookback_days")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("timezone", "UTC")

	// Gemini defaults: low temperature for deterministic JSON output
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.temperature", 0.2)
	viper.SetDefault("gemini.top_p", 0.8)
	viper.SetDefault("gemini.top_k", 40)
	viper.SetDefault("gemini.max_output_tokens", 500)
	viper.SetDefault("gemini.timeout", "10s")

	viper.SetDefault("classifier.breaker_enabled", true)
	viper.SetDefault("classifier.failure_threshold", 5)
	viper.SetDefault("classifier.open_timeout", "30s")

	viper.SetDefault("storage.driver", StorageDriverSQLite)
	viper.SetDefault("storage.sqlite_path", "./data/health.db")
	viper.SetDefault("storage.sheets.users_sheet", "Users")
	viper.SetDefault("storage.sheets.exercise_sheet", "Exercise Logs")
	viper.SetDefault("storage.sheets.food_sheet", "Food Logs")

	viper.SetDefault("webhook.rate_limit_per_min", 60)

	viper.SetDefault("report.enabled", true)
	viper.SetDefault("report.schedule", "0 9 * * MON")
	viper.SetDefault("report.lookback_days", 7)
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverSQLite:
		if cfg.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	case StorageDriverSheets:
		if cfg.Storage.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("storage.sheets.spreadsheet_id is required for the sheets driver")
		}
		if cfg.Storage.Sheets.CredentialsPath == "" {
			return fmt.Errorf("storage.sheets.credentials_path is required for the sheets driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", cfg.Gemini.Timeout)
	}
	if cfg.Report.LookbackDays <= 0 {
		return fmt.Errorf("report.lookback_days must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList splits a comma separated value since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
