package repository

import (
	"context"

	"health-tracker/internal/model"
)

// Repository is the composed interface for the health data store.
type Repository interface {
	UserRepository
	ExerciseRepository
	FoodRepository
}

// UserRepository defines data access for tracked users.
type UserRepository interface {
	// EnsureUser returns the user, creating it with default goals when absent.
	EnsureUser(ctx context.Context, opt EnsureUserOptions) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type ExerciseRepository interface {
	CreateExerciseLog(ctx context.Context, opt CreateExerciseLogOptions) (model.ExerciseRecord, error)
	// ListExerciseLogs is not bounded by date; callers filter.
	ListExerciseLogs(ctx context.Context, opt ListLogsOptions) ([]model.ExerciseRecord, error)
}

type FoodRepository interface {
	CreateFoodLog(ctx context.Context, opt CreateFoodLogOptions) (model.FoodRecord, error)
	ListFoodLogs(ctx context.Context, opt ListLogsOptions) ([]model.FoodRecord, error)
}
