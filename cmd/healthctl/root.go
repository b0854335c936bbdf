package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"health-tracker/config"
	"health-tracker/internal/bootstrap"
	"health-tracker/internal/health"
	"health-tracker/internal/health/usecase"
	"health-tracker/internal/model"
	"health-tracker/pkg/log"
)

const defaultUserID = "cli"

// app holds lazily built dependencies so commands that need no storage stay fast.
type app struct {
	userID string

	cfg     *config.Config
	l       log.Logger
	storage *bootstrap.Storage
	uc      health.UseCase
}

func (a *app) load() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.l = log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return nil
}

func (a *app) useCase(ctx context.Context) (health.UseCase, error) {
	if a.uc != nil {
		return a.uc, nil
	}
	if err := a.load(); err != nil {
		return nil, err
	}
	st, err := bootstrap.OpenStorage(ctx, a.cfg, a.l)
	if err != nil {
		return nil, err
	}
	a.storage = &st
	a.uc = usecase.New(a.l, st.Repo, bootstrap.NewClassifier(a.cfg, a.l), bootstrap.Location(a.cfg.Timezone, a.l))
	return a.uc, nil
}

func (a *app) scope() model.Scope {
	return model.Scope{UserID: a.userID}
}

func (a *app) close() {
	if a.storage != nil && a.storage.Close != nil {
		_ = a.storage.Close()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "healthctl",
		Short: "Health Tracker command line",
		Long: `healthctl runs the same classification and logging pipeline as the
chat webhooks, for local testing and backfills.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.userID, "user", "u", defaultUserID, "user id to act as")

	root.AddCommand(
		newClassifyCmd(a),
		newLogCmd(a),
		newStatusCmd(a),
		newLogsCmd(a),
		newSheetsAuthCmd(),
	)
	return root
}
