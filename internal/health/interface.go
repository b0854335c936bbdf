package health

import (
	"context"

	"health-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Messages
	HandleMessage(ctx context.Context, sc model.Scope, input MessageInput) (MessageOutput, error)

	// Reporting
	Summarize(ctx context.Context, sc model.Scope, days int) (StatusSummary, error)
	StatusReport(ctx context.Context, sc model.Scope) (string, error)
	ListLogs(ctx context.Context, sc model.Scope, input ListLogsInput) (ListLogsOutput, error)

	// Users
	RegisterUser(ctx context.Context, sc model.Scope) (model.User, error)
	ListRecipients(ctx context.Context) ([]model.User, error)
}
