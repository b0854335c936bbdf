package sheets

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// Food tab: id | timestamp | user_id | food_items | raw_message | processed_data
const foodColumns = "A:F"

func (r *implRepository) CreateFoodLog(ctx context.Context, opt repository.CreateFoodLogOptions) (model.FoodRecord, error) {
	if opt.UserID == "" {
		return model.FoodRecord{}, repository.ErrUserIDRequired
	}

	rec := model.FoodRecord{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Date:       r.dateOrNow(opt.Date),
		FoodItems:  opt.FoodItems,
		RawMessage: opt.RawMessage,
	}
	row := []any{
		rec.ID,
		rec.Date.Format(time.RFC3339Nano),
		rec.UserID,
		rec.FoodItems,
		rec.RawMessage,
		opt.ProcessedData,
	}
	if err := r.appendRow(ctx, r.cfg.FoodSheet, foodColumns, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFoodLog"), err)
		return model.FoodRecord{}, repository.ErrFailedToInsert
	}
	return rec, nil
}

func (r *implRepository) ListFoodLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.FoodRecord, error) {
	rows, _, err := r.readRows(ctx, r.cfg.FoodSheet, foodColumns)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFoodLogs"), err)
		return nil, repository.ErrFailedToList
	}

	var records []model.FoodRecord
	for _, row := range rows {
		if cell(row, 2) != opt.UserID {
			continue
		}
		records = append(records, model.FoodRecord{
			ID:         cell(row, 0),
			Date:       cellTime(row, 1),
			UserID:     cell(row, 2),
			FoodItems:  cell(row, 3),
			RawMessage: cell(row, 4),
		})
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	if opt.Limit > 0 && len(records) > opt.Limit {
		records = records[:opt.Limit]
	}
	return records, nil
}
