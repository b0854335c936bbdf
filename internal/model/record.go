package model

import "time"

// ExerciseRecord is one logged workout.
type ExerciseRecord struct {
	ID         string
	UserID     string
	Date       time.Time
	Type       string
	Duration   int // minutes, 0 when unknown
	Distance   string
	RawMessage string
}

// FoodRecord is one logged meal.
type FoodRecord struct {
	ID         string
	UserID     string
	Date       time.Time
	FoodItems  string
	RawMessage string
}

// User is a tracked person. IsNew is set only by the call that created it.
type User struct {
	ID           string
	ChatID       int64
	IsNew        bool
	ExerciseGoal int
	FoodLogGoal  int
	CreatedAt    time.Time
}

const (
	DefaultExerciseGoal = 3
	DefaultFoodLogGoal  = 1
)
