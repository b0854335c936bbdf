package sheets

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// Exercise tab: id | timestamp | user_id | duration | type | distance | raw_message | processed_data
const exerciseColumns = "A:H"

func (r *implRepository) CreateExerciseLog(ctx context.Context, opt repository.CreateExerciseLogOptions) (model.ExerciseRecord, error) {
	if opt.UserID == "" {
		return model.ExerciseRecord{}, repository.ErrUserIDRequired
	}

	rec := model.ExerciseRecord{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Date:       r.dateOrNow(opt.Date),
		Type:       opt.Type,
		Duration:   opt.Duration,
		Distance:   opt.Distance,
		RawMessage: opt.RawMessage,
	}
	row := []any{
		rec.ID,
		rec.Date.Format(time.RFC3339Nano),
		rec.UserID,
		strconv.Itoa(rec.Duration),
		rec.Type,
		rec.Distance,
		rec.RawMessage,
		opt.ProcessedData,
	}
	if err := r.appendRow(ctx, r.cfg.ExerciseSheet, exerciseColumns, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateExerciseLog"), err)
		return model.ExerciseRecord{}, repository.ErrFailedToInsert
	}
	return rec, nil
}

// ListExerciseLogs reads the whole tab and filters by user in memory.
func (r *implRepository) ListExerciseLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.ExerciseRecord, error) {
	rows, _, err := r.readRows(ctx, r.cfg.ExerciseSheet, exerciseColumns)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExerciseLogs"), err)
		return nil, repository.ErrFailedToList
	}

	var records []model.ExerciseRecord
	for _, row := range rows {
		if cell(row, 2) != opt.UserID {
			continue
		}
		records = append(records, model.ExerciseRecord{
			ID:         cell(row, 0),
			Date:       cellTime(row, 1),
			UserID:     cell(row, 2),
			Duration:   cellInt(row, 3),
			Type:       cell(row, 4),
			Distance:   cell(row, 5),
			RawMessage: cell(row, 6),
		})
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	if opt.Limit > 0 && len(records) > opt.Limit {
		records = records[:opt.Limit]
	}
	return records, nil
}
