package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyOffline(t *testing.T) {
	tests := []struct {
		args []string
		want classifier.Type
	}{
		{[]string{"classify", "--offline", "I", "ran", "3", "miles"}, classifier.TypeExercise},
		{[]string{"classify", "--offline", "salad for lunch"}, classifier.TypeFood},
		{[]string{"classify", "--offline", "weekly report please"}, classifier.TypeStatus},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[2:], " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got classifier.Classification
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if got.Type != tt.want || !got.Fallback {
				t.Errorf("got %+v, want type %s from keyword rules", got, tt.want)
			}
		})
	}
}

func TestClassifyRequiresMessage(t *testing.T) {
	if _, err := run(t, "classify", "--offline"); err == nil {
		t.Error("expected an argument error")
	}
}

func TestSheetsAuthMissingFile(t *testing.T) {
	_, err := run(t, "sheets-auth", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "read credentials file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogDetail(t *testing.T) {
	if got := logDetail(healthEntry("exercise", 30, "running", "3 miles", "")); got != "30 min running (3 miles)" {
		t.Errorf("exercise detail = %q", got)
	}
	if got := logDetail(healthEntry("food", 0, "", "", "eggs")); got != "eggs" {
		t.Errorf("food detail = %q", got)
	}
}

func healthEntry(kind string, duration int, typ, distance, food string) health.LogEntry {
	return health.LogEntry{Kind: kind, Duration: duration, ExerciseType: typ, Distance: distance, FoodItems: food}
}
