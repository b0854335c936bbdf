// Package digest pushes the weekly health report to every chat user on a
// cron schedule.
package digest

import (
	"context"
	"fmt"
	"sync"
	"time"

	rcron "github.com/robfig/cron/v3"

	"health-tracker/internal/health"
	pkgLog "health-tracker/pkg/log"
)

const (
	DefaultSchedule     = "0 9 * * MON"
	DefaultLookbackDays = 7

	stopTimeout = 5 * time.Second
)

// Sender delivers a rendered report to a chat.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type Config struct {
	Schedule     string // standard five-field cron expression
	LookbackDays int
	Location     *time.Location
}

// Service runs the digest job.
type Service struct {
	l      pkgLog.Logger
	uc     health.UseCase
	sender Sender
	cfg    Config

	mu   sync.Mutex
	cron *rcron.Cron
}

// New validates the schedule up front so a typo fails at startup.
func New(l pkgLog.Logger, uc health.UseCase, sender Sender, cfg Config) (*Service, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = DefaultLookbackDays
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if _, err := rcron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", cfg.Schedule, err)
	}
	if uc == nil || sender == nil {
		return nil, fmt.Errorf("digest requires a use case and a sender")
	}

	return &Service{
		l:      l,
		uc:     uc,
		sender: sender,
		cfg:    cfg,
	}, nil
}
