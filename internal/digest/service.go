package digest

import (
	"context"
	"time"

	rcron "github.com/robfig/cron/v3"

	"health-tracker/internal/health/usecase"
	"health-tracker/internal/model"
	"health-tracker/internal/observability"
	pkgTelegram "health-tracker/pkg/telegram"
)

const (
	outcomeSent   = "sent"
	outcomeFailed = "failed"
)

// Result tallies one digest run.
type Result struct {
	Recipients int
	Sent       int
	Failed     int
}

// Start registers the job and runs the scheduler until ctx is done or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	c := rcron.New(rcron.WithLocation(s.cfg.Location))
	if _, err := c.AddFunc(s.cfg.Schedule, func() {
		res, err := s.RunOnce(ctx)
		if err != nil {
			s.l.Errorf(ctx, "internal.digest.Start: run failed: %v", err)
			return
		}
		s.l.Infof(ctx, "internal.digest.Start: sent %d/%d reports (%d failed)", res.Sent, res.Recipients, res.Failed)
	}); err != nil {
		return err
	}

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()

	c.Start()
	s.l.Infof(ctx, "internal.digest.Start: scheduled %q in %s", s.cfg.Schedule, s.cfg.Location)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop waits briefly for a running job to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return
	}

	select {
	case <-c.Stop().Done():
	case <-time.After(stopTimeout):
		s.l.Warnf(context.Background(), "internal.digest.Stop: timeout waiting for running job")
	}
}

// RunOnce sends the report to every recipient. A failure for one user is
// counted and does not stop the others.
func (s *Service) RunOnce(ctx context.Context) (Result, error) {
	users, err := s.uc.ListRecipients(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{Recipients: len(users)}
	for _, u := range users {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if err := s.sendOne(ctx, u); err != nil {
			s.l.Warnf(ctx, "internal.digest.RunOnce: user %s: %v", u.ID, err)
			observability.RecordDigest(outcomeFailed)
			res.Failed++
			continue
		}
		observability.RecordDigest(outcomeSent)
		res.Sent++
	}
	return res, nil
}

func (s *Service) sendOne(ctx context.Context, u model.User) error {
	summary, err := s.uc.Summarize(ctx, model.Scope{UserID: u.ID, ChatID: u.ChatID}, s.cfg.LookbackDays)
	if err != nil {
		return err
	}
	return s.sender.SendMessageWithMode(ctx, u.ChatID, usecase.RenderReport(summary), pkgTelegram.ParseModeMarkdown)
}
