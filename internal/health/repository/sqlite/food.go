package sqlite

import (
	"context"

	"github.com/google/uuid"

	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// CreateFoodLog inserts a food row and returns the stored record.
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

	const query = `
		INSERT INTO food_logs (id, user_id, logged_at, food_items, raw_message, processed_data)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Date.Format(timeLayout), rec.FoodItems, rec.RawMessage, opt.ProcessedData,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFoodLog"), err)
		return model.FoodRecord{}, repository.ErrFailedToInsert
	}
	return rec, nil
}

// ListFoodLogs returns the user's food records, newest first.
func (r *implRepository) ListFoodLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.FoodRecord, error) {
	query := `
		SELECT id, user_id, logged_at, food_items, raw_message
		FROM food_logs
		WHERE user_id = ?
		ORDER BY logged_at DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFoodLogs"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var records []model.FoodRecord
	for rows.Next() {
		var (
			rec      model.FoodRecord
			loggedAt string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &loggedAt, &rec.FoodItems, &rec.RawMessage); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFoodLogs"), err)
			return nil, repository.ErrFailedToList
		}
		rec.Date = parseTime(loggedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return records, nil
}
