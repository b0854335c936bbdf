package classifier

import (
	"fmt"
	"strings"
)

// Type is the intent a message was classified into.
type Type string

const (
	TypeExercise Type = "exercise"
	TypeFood     Type = "food"
	TypeStatus   Type = "status"
	TypeUnknown  Type = "unknown"
)

// Valid reports whether t is one of the four known types.
func (t Type) Valid() bool {
	switch t {
	case TypeExercise, TypeFood, TypeStatus, TypeUnknown:
		return true
	}
	return false
}

// Classification is the structured reading of one chat message.
type Classification struct {
	Type            Type   `json:"type"`
	IsStatusRequest bool   `json:"is_status_request"`
	ExerciseType    string `json:"exercise_type"`
	DurationMinutes *int   `json:"duration_minutes"`
	Distance        string `json:"distance"`
	FoodItems       string `json:"food_items"`
	Confidence      int    `json:"confidence"`
	Fallback        bool   `json:"fallback"`
}

// Normalize enforces the cross-field invariants: a status request is always of
// type status, and fields that belong to another type are cleared.
func (c Classification) Normalize() Classification {
	if c.IsStatusRequest || c.Type == TypeStatus {
		c.Type = TypeStatus
		c.IsStatusRequest = true
	}
	if !c.Type.Valid() {
		c.Type = TypeUnknown
	}
	if c.Type != TypeExercise {
		c.ExerciseType = ""
		c.DurationMinutes = nil
		c.Distance = ""
	}
	if c.Type != TypeFood {
		c.FoodItems = ""
	}
	if c.DurationMinutes != nil && *c.DurationMinutes < 0 {
		c.DurationMinutes = nil
	}
	switch {
	case c.Confidence < 0:
		c.Confidence = 0
	case c.Confidence > 100:
		c.Confidence = 100
	}
	return c
}

// Fields are the structured values pulled out of free text.
type Fields struct {
	DurationMinutes *int
	Distance        string
}

// Stage names where a model classification attempt failed.
type Stage string

const (
	StageTransport Stage = "transport"
	StageEmpty     Stage = "empty"
	StageParse     Stage = "parse"
	StageSchema    Stage = "schema"
	StageBreaker   Stage = "breaker"
)

// ClassificationError wraps a model classification failure with its stage.
type ClassificationError struct {
	Stage Stage
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classifier: %s: %v", e.Stage, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func parseType(raw string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.Valid()
}
