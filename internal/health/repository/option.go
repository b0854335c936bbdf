package repository

import "time"

// EnsureUserOptions identifies the user. A non-zero ChatID is recorded so the
// weekly digest can reach the user.
type EnsureUserOptions struct {
	UserID string
	ChatID int64
}

// CreateExerciseLogOptions holds parameters for inserting an exercise record.
// A zero Date means now.
type CreateExerciseLogOptions struct {
	UserID        string
	Date          time.Time
	Type          string
	Duration      int
	Distance      string
	RawMessage    string
	ProcessedData string // classification as JSON
}

// CreateFoodLogOptions holds parameters for inserting a food record.
type CreateFoodLogOptions struct {
	UserID        string
	Date          time.Time
	FoodItems     string
	RawMessage    string
	ProcessedData string
}

// ListLogsOptions filters records by user. Limit <= 0 returns everything.
type ListLogsOptions struct {
	UserID string
	Limit  int
}
