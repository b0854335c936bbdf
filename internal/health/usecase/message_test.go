package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health"
	"health-tracker/internal/model"
)

func TestHandleMessage_Validation(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &stubClassifier{})

	t.Run("Empty User ID", func(t *testing.T) {
		_, err := uc.HandleMessage(context.Background(), model.Scope{}, health.MessageInput{Text: "I ran"})
		if !errors.Is(err, health.ErrEmptyUserID) {
			t.Errorf("expected ErrEmptyUserID, got %v", err)
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		_, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "   "})
		if !errors.Is(err, health.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestHandleMessage_Exercise(t *testing.T) {
	repo := newMockRepo()
	clf := &stubClassifier{result: &classifier.Classification{
		Type: classifier.TypeExercise, ExerciseType: "running", DurationMinutes: intPtr(45), Distance: "5 miles", Confidence: 95,
	}}
	uc := newTestUseCase(repo, clf)

	out, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "I ran 5 miles today"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "✅ *Exercise Logged!* ✅\n\nDuration: 45 minutes\nType: running\nDistance: 5 miles\n\nKeep up the good work! 💪"
	if out.Response != want {
		t.Errorf("response =\n%q\nwant\n%q", out.Response, want)
	}
	if out.Classification.Type != classifier.TypeExercise {
		t.Errorf("classification type = %q", out.Classification.Type)
	}
	if repo.createExCalls != 1 || repo.createFoodCalls != 0 {
		t.Errorf("writes: exercise=%d food=%d, want 1/0", repo.createExCalls, repo.createFoodCalls)
	}
	if repo.ensureCalls != 1 {
		t.Errorf("EnsureUser calls = %d, want 1", repo.ensureCalls)
	}
	if repo.lastExercise.Duration != 45 || repo.lastExercise.RawMessage != "I ran 5 miles today" {
		t.Errorf("unexpected write: %+v", repo.lastExercise)
	}
	if !strings.Contains(repo.lastExercise.ProcessedData, `"exercise_type":"running"`) {
		t.Errorf("processed data = %s", repo.lastExercise.ProcessedData)
	}
}

func TestHandleMessage_ExerciseWithoutDetails(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &stubClassifier{result: &classifier.Classification{Type: classifier.TypeExercise}})

	out, _ := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "worked out"})
	want := "✅ *Exercise Logged!* ✅\n\n\nKeep up the good work! 💪"
	if out.Response != want {
		t.Errorf("response = %q, want %q", out.Response, want)
	}
}

func TestHandleMessage_Food(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &stubClassifier{})

	out, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "I had oatmeal for breakfast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "✅ *Food Logged!* ✅\n\nFood: oatmeal\n\nThanks for logging your meal! 🍎"
	if out.Response != want {
		t.Errorf("response = %q, want %q", out.Response, want)
	}
	if repo.createFoodCalls != 1 || repo.createExCalls != 0 {
		t.Errorf("writes: exercise=%d food=%d, want 0/1", repo.createExCalls, repo.createFoodCalls)
	}
	if !out.Classification.Fallback {
		t.Error("expected the keyword classification to be marked as fallback")
	}
}

func TestHandleMessage_WriteFailures(t *testing.T) {
	t.Run("Exercise", func(t *testing.T) {
		repo := newMockRepo()
		repo.createExErr = errBackend
		uc := newTestUseCase(repo, &stubClassifier{})

		out, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "I ran 3 miles"})
		if err != nil {
			t.Fatalf("write failures must not surface as errors: %v", err)
		}
		if out.Response != MsgExerciseFailed {
			t.Errorf("response = %q", out.Response)
		}
		if repo.createExCalls != 1 {
			t.Errorf("expected exactly one attempt, got %d", repo.createExCalls)
		}
	})

	t.Run("Food", func(t *testing.T) {
		repo := newMockRepo()
		repo.createFoodErr = errBackend
		uc := newTestUseCase(repo, &stubClassifier{})

		out, _ := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "salad for lunch"})
		if out.Response != MsgFoodFailed {
			t.Errorf("response = %q", out.Response)
		}
	})

	t.Run("EnsureUser failure continues", func(t *testing.T) {
		repo := newMockRepo()
		repo.ensureErr = errBackend
		uc := newTestUseCase(repo, &stubClassifier{})

		out, _ := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "salad for lunch"})
		if repo.createFoodCalls != 1 || !strings.Contains(out.Response, "Food Logged") {
			t.Errorf("expected the food log to proceed, got %q", out.Response)
		}
	})
}

func TestHandleMessage_Unknown(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &stubClassifier{})

	out, _ := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "hello there"})
	if out.Response != MsgUnknown {
		t.Errorf("response = %q", out.Response)
	}
	if repo.createExCalls+repo.createFoodCalls != 0 {
		t.Error("unknown messages must not write")
	}
}

func TestHandleMessage_Status(t *testing.T) {
	t.Run("Literal status skips classification", func(t *testing.T) {
		repo := newMockRepo()
		clf := &stubClassifier{}
		uc := newTestUseCase(repo, clf)

		out, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: " Status "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if clf.calls != 0 || repo.ensureCalls != 0 {
			t.Errorf("classifier calls=%d ensure calls=%d, want 0/0", clf.calls, repo.ensureCalls)
		}
		if out.Classification.Confidence != classifier.ConfidenceExplicitCommand || !out.Classification.IsStatusRequest {
			t.Errorf("classification = %+v", out.Classification)
		}
		if !strings.HasPrefix(out.Response, MsgReportHeader) {
			t.Errorf("response = %q", out.Response)
		}
		if repo.createExCalls+repo.createFoodCalls != 0 {
			t.Error("status must not write")
		}
	})

	t.Run("Classified status", func(t *testing.T) {
		repo := newMockRepo()
		clf := &stubClassifier{}
		uc := newTestUseCase(repo, clf)

		out, _ := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "send me my weekly report"})
		if clf.calls != 1 {
			t.Errorf("classifier calls = %d, want 1", clf.calls)
		}
		if !strings.Contains(out.Response, "No exercise logs in the past week.") {
			t.Errorf("response = %q", out.Response)
		}
	})

	t.Run("Both reads failing still renders", func(t *testing.T) {
		repo := newMockRepo()
		repo.listExErr = errBackend
		repo.listFoodErr = errBackend
		uc := newTestUseCase(repo, &stubClassifier{})

		out, _ := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "status"})
		if !strings.Contains(out.Response, "• Exercise sessions: 0 sessions") {
			t.Errorf("response = %q", out.Response)
		}
	})
}

func TestRoute_StatusFailure(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &stubClassifier{})
	got := uc.route(context.Background(), model.Scope{}, classifier.Classification{Type: classifier.TypeStatus}, "status")
	if got != MsgStatusFailed {
		t.Errorf("route = %q, want status apology", got)
	}
}

func TestHandleMessage_StatusFlagWins(t *testing.T) {
	repo := newMockRepo()
	clf := &stubClassifier{result: &classifier.Classification{
		Type: classifier.TypeFood, IsStatusRequest: true, FoodItems: "report card", Confidence: 90,
	}}
	uc := newTestUseCase(repo, clf)

	out, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "how am I doing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createFoodCalls != 0 || repo.createExCalls != 0 {
		t.Errorf("status requests must not write: exercise=%d food=%d", repo.createExCalls, repo.createFoodCalls)
	}
	if !strings.Contains(out.Response, "No exercise logs in the past week.") {
		t.Errorf("expected the status report, got %q", out.Response)
	}
	if out.Classification.Type != classifier.TypeStatus || out.Classification.FoodItems != "" {
		t.Errorf("classification = %+v, want a normalized status request", out.Classification)
	}
}

func TestRoute_StatusFlag(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &stubClassifier{})

	got := uc.route(context.Background(), model.Scope{UserID: "u1"},
		classifier.Classification{Type: classifier.TypeExercise, IsStatusRequest: true, ExerciseType: "running"}, "status please")
	if repo.createExCalls != 0 {
		t.Errorf("exercise writes = %d, want 0", repo.createExCalls)
	}
	if !strings.Contains(got, "No food logs in the past week.") {
		t.Errorf("route = %q, want the status report", got)
	}
}

func TestHandleMessage_ExerciseThenMeal(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &stubClassifier{})

	out, err := uc.HandleMessage(context.Background(), model.Scope{UserID: "u1"}, health.MessageInput{Text: "I ran 5 miles then had lunch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createExCalls != 1 || repo.createFoodCalls != 0 {
		t.Errorf("writes: exercise=%d food=%d, want 1/0", repo.createExCalls, repo.createFoodCalls)
	}
	if repo.lastExercise.Type != "running" || repo.lastExercise.Distance != "5 miles" {
		t.Errorf("unexpected write: %+v", repo.lastExercise)
	}
	if out.Classification.Type != classifier.TypeExercise {
		t.Errorf("classification type = %q", out.Classification.Type)
	}
}
