package usecase

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"health-tracker/internal/health"
	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
	"health-tracker/internal/observability"
)

// Summarize aggregates the trailing window of days for the user. Both
// categories are read concurrently; a failed read counts as an empty category.
func (uc *implUseCase) Summarize(ctx context.Context, sc model.Scope, days int) (health.StatusSummary, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return health.StatusSummary{}, health.ErrEmptyUserID
	}
	if days <= 0 {
		days = health.DefaultSummaryDays
	}

	now := uc.now().In(uc.loc)
	from := now.AddDate(0, 0, -days)
	opt := repository.ListLogsOptions{UserID: sc.UserID}

	var (
		wg        sync.WaitGroup
		exercises []model.ExerciseRecord
		foods     []model.FoodRecord
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		recs, err := uc.repo.ListExerciseLogs(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "%s: ListExerciseLogs %s: %v", LogPrefixSummarize, sc.UserID, err)
			observability.RecordRepositoryError("list_exercise_logs")
			return
		}
		exercises = recs
	}()
	go func() {
		defer wg.Done()
		recs, err := uc.repo.ListFoodLogs(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "%s: ListFoodLogs %s: %v", LogPrefixSummarize, sc.UserID, err)
			observability.RecordRepositoryError("list_food_logs")
			return
		}
		foods = recs
	}()
	wg.Wait()

	summary := health.StatusSummary{
		UserID:        sc.UserID,
		Days:          days,
		From:          from,
		To:            now,
		ExerciseTypes: map[string]int{},
		ExerciseLogs:  []model.ExerciseRecord{},
		FoodLogs:      []model.FoodRecord{},
	}

	var (
		durationSum   int
		durationCount int
	)
	for _, rec := range exercises {
		if rec.Date.Before(from) {
			continue
		}
		rec.Date = rec.Date.In(uc.loc)
		summary.ExerciseLogs = append(summary.ExerciseLogs, rec)
		summary.ExerciseTypes[exerciseLabel(rec.Type)]++
		if rec.Duration > 0 {
			durationSum += rec.Duration
			durationCount++
		}
	}
	for _, rec := range foods {
		if rec.Date.Before(from) {
			continue
		}
		rec.Date = rec.Date.In(uc.loc)
		summary.FoodLogs = append(summary.FoodLogs, rec)
	}

	sort.SliceStable(summary.ExerciseLogs, func(i, j int) bool {
		return summary.ExerciseLogs[i].Date.After(summary.ExerciseLogs[j].Date)
	})
	sort.SliceStable(summary.FoodLogs, func(i, j int) bool {
		return summary.FoodLogs[i].Date.After(summary.FoodLogs[j].Date)
	})

	summary.ExerciseCount = len(summary.ExerciseLogs)
	summary.FoodLogCount = len(summary.FoodLogs)
	if durationCount > 0 {
		summary.AverageDuration = int(math.Round(float64(durationSum) / float64(durationCount)))
	}

	return summary, nil
}

// StatusReport renders the default weekly window as chat text.
func (uc *implUseCase) StatusReport(ctx context.Context, sc model.Scope) (string, error) {
	summary, err := uc.Summarize(ctx, sc, health.DefaultSummaryDays)
	if err != nil {
		return "", err
	}
	return RenderReport(summary), nil
}

func exerciseLabel(t string) string {
	if t == "" {
		return "exercise"
	}
	return t
}
