package health

import (
	"time"

	"health-tracker/internal/classifier"
	"health-tracker/internal/model"
)

// DefaultSummaryDays is the status window used by chat status requests.
const DefaultSummaryDays = 7

// --- UseCase Inputs ---

type MessageInput struct {
	Text string
}

type ListLogsInput struct {
	Limit int
}

// --- UseCase Outputs ---

// MessageOutput carries both the classification and the reply shown to the user.
type MessageOutput struct {
	Classification classifier.Classification
	Response       string
}

// StatusSummary is computed on demand for a trailing window and never stored.
type StatusSummary struct {
	UserID          string
	Days            int
	From            time.Time
	To              time.Time
	ExerciseCount   int
	AverageDuration int
	FoodLogCount    int
	ExerciseTypes   map[string]int
	ExerciseLogs    []model.ExerciseRecord // newest first
	FoodLogs        []model.FoodRecord     // newest first
}

// Log kinds
const (
	LogKindExercise = "exercise"
	LogKindFood     = "food"
)

// LogEntry is one exercise or food record in a combined timeline.
type LogEntry struct {
	ID           string
	Kind         string
	Date         time.Time
	ExerciseType string
	Duration     int
	Distance     string
	FoodItems    string
	RawMessage   string
}

type ListLogsOutput struct {
	Logs []LogEntry
}
