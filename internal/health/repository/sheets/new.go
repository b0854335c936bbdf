package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"health-tracker/internal/health/repository"
	"health-tracker/pkg/log"
)

// Config names the spreadsheet and its three tabs.
type Config struct {
	SpreadsheetID string
	UsersSheet    string
	ExerciseSheet string
	FoodSheet     string
}

type implRepository struct {
	svc *sheetsapi.Service
	cfg Config
	l   log.Logger
	now func() time.Time
}

// New creates a Google Sheets-backed Repository.
func New(svc *sheetsapi.Service, cfg Config, l log.Logger) repository.Repository {
	if svc == nil {
		panic("health/repository/sheets: service is required")
	}
	if cfg.UsersSheet == "" {
		cfg.UsersSheet = "Users"
	}
	if cfg.ExerciseSheet == "" {
		cfg.ExerciseSheet = "Exercise Logs"
	}
	if cfg.FoodSheet == "" {
		cfg.FoodSheet = "Food Logs"
	}
	return &implRepository{svc: svc, cfg: cfg, l: l, now: time.Now}
}

// NewServiceFromCredentialsFile builds a Sheets service from a Service Account
// JSON file, or from installed-app credentials with a token.json next to the process.
func NewServiceFromCredentialsFile(ctx context.Context, credentialsPath string) (*sheetsapi.Service, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewServiceFromCredentialsJSON(ctx, data)
}

func NewServiceFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*sheetsapi.Service, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheetsapi.SpreadsheetsScope)
	if err == nil {
		svc, svcErr := sheetsapi.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", svcErr)
		}
		return svc, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{sheetsapi.SpreadsheetsScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: run healthctl sheets-auth or use a Service Account")
	}
	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := sheetsapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create sheets service from OAuth token: %w", svcErr)
	}
	return svc, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("health/repository/sheets.%s", method)
}
