package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health"
	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
	"health-tracker/internal/observability"
)

// HandleMessage classifies one chat message, performs at most one write and
// returns the reply text. Collaborator failures become apology replies, never errors.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input health.MessageInput) (health.MessageOutput, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return health.MessageOutput{}, health.ErrEmptyUserID
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return health.MessageOutput{}, health.ErrEmptyInput
	}

	var cls classifier.Classification
	if strings.EqualFold(text, statusCommand) {
		cls = classifier.Classification{
			Type:            classifier.TypeStatus,
			IsStatusRequest: true,
			Confidence:      classifier.ConfidenceExplicitCommand,
		}
	} else {
		if _, err := uc.repo.EnsureUser(ctx, repository.EnsureUserOptions{UserID: sc.UserID, ChatID: sc.ChatID}); err != nil {
			uc.l.Warnf(ctx, "%s: EnsureUser %s: %v", LogPrefixHandleMessage, sc.UserID, err)
			observability.RecordRepositoryError("ensure_user")
		}
		cls = uc.clf.Classify(ctx, text).Normalize()
	}

	uc.l.Infof(ctx, "%s: user=%s type=%s fallback=%t", LogPrefixHandleMessage, sc.UserID, cls.Type, cls.Fallback)

	return health.MessageOutput{
		Classification: cls,
		Response:       uc.route(ctx, sc, cls, text),
	}, nil
}

// route dispatches on the classification type. Exactly one branch runs, and
// a status request wins whatever type it was given.
func (uc *implUseCase) route(ctx context.Context, sc model.Scope, cls classifier.Classification, raw string) string {
	cls = cls.Normalize()

	switch cls.Type {
	case classifier.TypeStatus:
		report, err := uc.StatusReport(ctx, sc)
		if err != nil {
			uc.l.Errorf(ctx, "%s: status report: %v", LogPrefixRoute, err)
			observability.RecordMessage(string(cls.Type), outcomeFailed)
			return MsgStatusFailed
		}
		observability.RecordMessage(string(cls.Type), outcomeOK)
		return report

	case classifier.TypeExercise:
		return uc.logExercise(ctx, sc, cls, raw)

	case classifier.TypeFood:
		return uc.logFood(ctx, sc, cls, raw)

	default:
		observability.RecordMessage(string(classifier.TypeUnknown), outcomeOK)
		return MsgUnknown
	}
}

func (uc *implUseCase) logExercise(ctx context.Context, sc model.Scope, cls classifier.Classification, raw string) string {
	duration := 0
	if cls.DurationMinutes != nil {
		duration = *cls.DurationMinutes
	}

	_, err := uc.repo.CreateExerciseLog(ctx, repository.CreateExerciseLogOptions{
		UserID:        sc.UserID,
		Type:          cls.ExerciseType,
		Duration:      duration,
		Distance:      cls.Distance,
		RawMessage:    raw,
		ProcessedData: processedData(cls),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateExerciseLog %s: %v", LogPrefixRoute, sc.UserID, err)
		observability.RecordRepositoryError("create_exercise_log")
		observability.RecordMessage(string(cls.Type), outcomeFailed)
		return MsgExerciseFailed
	}

	observability.RecordMessage(string(cls.Type), outcomeOK)
	return renderExerciseConfirmation(cls)
}

func (uc *implUseCase) logFood(ctx context.Context, sc model.Scope, cls classifier.Classification, raw string) string {
	_, err := uc.repo.CreateFoodLog(ctx, repository.CreateFoodLogOptions{
		UserID:        sc.UserID,
		FoodItems:     cls.FoodItems,
		RawMessage:    raw,
		ProcessedData: processedData(cls),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateFoodLog %s: %v", LogPrefixRoute, sc.UserID, err)
		observability.RecordRepositoryError("create_food_log")
		observability.RecordMessage(string(cls.Type), outcomeFailed)
		return MsgFoodFailed
	}

	observability.RecordMessage(string(cls.Type), outcomeOK)
	return renderFoodConfirmation(cls)
}

func processedData(cls classifier.Classification) string {
	b, err := json.Marshal(cls)
	if err != nil {
		return ""
	}
	return string(b)
}
