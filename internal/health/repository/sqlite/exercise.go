package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// CreateExerciseLog inserts an exercise row and returns the stored record.
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

	const query = `
		INSERT INTO exercise_logs (id, user_id, logged_at, type, duration, distance, raw_message, processed_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Date.Format(timeLayout), rec.Type, rec.Duration, rec.Distance,
		rec.RawMessage, opt.ProcessedData,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateExerciseLog"), err)
		return model.ExerciseRecord{}, repository.ErrFailedToInsert
	}
	return rec, nil
}

// ListExerciseLogs returns the user's exercise records, newest first.
func (r *implRepository) ListExerciseLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.ExerciseRecord, error) {
	query := `
		SELECT id, user_id, logged_at, type, duration, distance, raw_message
		FROM exercise_logs
		WHERE user_id = ?
		ORDER BY logged_at DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExerciseLogs"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var records []model.ExerciseRecord
	for rows.Next() {
		var (
			rec      model.ExerciseRecord
			loggedAt string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &loggedAt, &rec.Type, &rec.Duration, &rec.Distance, &rec.RawMessage); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListExerciseLogs"), err)
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

func (r *implRepository) dateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		t = r.now()
	}
	return t.UTC()
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t
}
