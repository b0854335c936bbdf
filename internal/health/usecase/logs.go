package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"health-tracker/internal/health"
	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// ListLogs merges the user's exercise and food records into one timeline,
// newest first. Unlike Summarize, a failed read fails the whole call.
func (uc *implUseCase) ListLogs(ctx context.Context, sc model.Scope, input health.ListLogsInput) (health.ListLogsOutput, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return health.ListLogsOutput{}, health.ErrEmptyUserID
	}

	opt := repository.ListLogsOptions{UserID: sc.UserID, Limit: input.Limit}
	exercises, err := uc.repo.ListExerciseLogs(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListExerciseLogs: %v", LogPrefixListLogs, err)
		return health.ListLogsOutput{}, fmt.Errorf("list exercise logs: %w", err)
	}
	foods, err := uc.repo.ListFoodLogs(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListFoodLogs: %v", LogPrefixListLogs, err)
		return health.ListLogsOutput{}, fmt.Errorf("list food logs: %w", err)
	}

	logs := make([]health.LogEntry, 0, len(exercises)+len(foods))
	for _, rec := range exercises {
		logs = append(logs, health.LogEntry{
			ID:           rec.ID,
			Kind:         health.LogKindExercise,
			Date:         rec.Date.In(uc.loc),
			ExerciseType: exerciseLabel(rec.Type),
			Duration:     rec.Duration,
			Distance:     rec.Distance,
			RawMessage:   rec.RawMessage,
		})
	}
	for _, rec := range foods {
		logs = append(logs, health.LogEntry{
			ID:         rec.ID,
			Kind:       health.LogKindFood,
			Date:       rec.Date.In(uc.loc),
			FoodItems:  rec.FoodItems,
			RawMessage: rec.RawMessage,
		})
	}

	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date.After(logs[j].Date) })
	if input.Limit > 0 && len(logs) > input.Limit {
		logs = logs[:input.Limit]
	}
	return health.ListLogsOutput{Logs: logs}, nil
}

// RegisterUser makes sure the user exists and records their chat.
func (uc *implUseCase) RegisterUser(ctx context.Context, sc model.Scope) (model.User, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return model.User{}, health.ErrEmptyUserID
	}
	return uc.repo.EnsureUser(ctx, repository.EnsureUserOptions{UserID: sc.UserID, ChatID: sc.ChatID})
}

// ListRecipients returns users reachable by chat push.
func (uc *implUseCase) ListRecipients(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	recipients := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ChatID != 0 {
			recipients = append(recipients, u)
		}
	}
	return recipients, nil
}
