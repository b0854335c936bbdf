// Package bootstrap builds the shared dependencies for the server and the CLI
// from configuration.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"health-tracker/config"
	"health-tracker/internal/classifier"
	"health-tracker/internal/health/repository"
	sheetsRepo "health-tracker/internal/health/repository/sheets"
	sqliteRepo "health-tracker/internal/health/repository/sqlite"
	"health-tracker/pkg/gemini"
	"health-tracker/pkg/log"
)

// Storage is an opened repository plus its lifecycle hooks.
type Storage struct {
	Repo  repository.Repository
	Ping  func(ctx context.Context) error // nil when the backend has no cheap probe
	Close func() error
}

// OpenStorage opens the backend selected by cfg.Storage.Driver.
func OpenStorage(ctx context.Context, cfg *config.Config, l log.Logger) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSheets:
		svc, err := sheetsRepo.NewServiceFromCredentialsFile(ctx, cfg.Storage.Sheets.CredentialsPath)
		if err != nil {
			return Storage{}, fmt.Errorf("sheets service: %w", err)
		}
		repo := sheetsRepo.New(svc, sheetsRepo.Config{
			SpreadsheetID: cfg.Storage.Sheets.SpreadsheetID,
			UsersSheet:    cfg.Storage.Sheets.UsersSheet,
			ExerciseSheet: cfg.Storage.Sheets.ExerciseSheet,
			FoodSheet:     cfg.Storage.Sheets.FoodSheet,
		}, l)
		return Storage{Repo: repo, Close: func() error { return nil }}, nil

	default:
		db, err := sqliteRepo.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return Storage{}, fmt.Errorf("sqlite: %w", err)
		}
		return Storage{
			Repo:  sqliteRepo.New(db, l),
			Ping:  pinger(db),
			Close: db.Close,
		}, nil
	}
}

func pinger(db *sql.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	}
}

// NewClassifier wires the model client when an API key is configured and
// falls back to keyword rules only otherwise.
func NewClassifier(cfg *config.Config, l log.Logger) classifier.Classifier {
	clfCfg := classifier.Config{
		Temperature:      cfg.Gemini.Temperature,
		TopP:             cfg.Gemini.TopP,
		TopK:             cfg.Gemini.TopK,
		MaxOutputTokens:  cfg.Gemini.MaxOutputTokens,
		Timeout:          cfg.Gemini.Timeout,
		BreakerEnabled:   cfg.Classifier.BreakerEnabled,
		FailureThreshold: cfg.Classifier.FailureThreshold,
		OpenTimeout:      cfg.Classifier.OpenTimeout,
	}

	if cfg.Gemini.APIKey == "" {
		l.Warn(context.Background(), "Gemini API key missing, classifying with keyword rules only")
		return classifier.New(l, nil, clfCfg)
	}

	client, err := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		APIURL:  cfg.Gemini.APIURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		l.Warnf(context.Background(), "Gemini client unavailable, using keyword rules: %v", err)
		return classifier.New(l, nil, clfCfg)
	}
	return classifier.New(l, client, clfCfg)
}

// Location resolves the configured timezone, falling back to UTC.
func Location(name string, l log.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		l.Warnf(context.Background(), "Invalid timezone %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
