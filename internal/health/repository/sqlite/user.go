package sqlite

import (
	"context"

	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// EnsureUser inserts the user with default goals if absent. IsNew is true only
// for the call that created the row.
func (r *implRepository) EnsureUser(ctx context.Context, opt repository.EnsureUserOptions) (model.User, error) {
	if opt.UserID == "" {
		return model.User{}, repository.ErrUserIDRequired
	}

	const insert = `
		INSERT INTO users (id, chat_id, exercise_goal, food_log_goal, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, insert,
		opt.UserID, opt.ChatID, model.DefaultExerciseGoal, model.DefaultFoodLogGoal,
		r.now().UTC().Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureUser"), err)
		return model.User{}, repository.ErrFailedToInsert
	}
	affected, _ := res.RowsAffected()

	if affected == 0 && opt.ChatID != 0 {
		const update = `UPDATE users SET chat_id = ? WHERE id = ? AND chat_id <> ?`
		if _, err := r.db.ExecContext(ctx, update, opt.ChatID, opt.UserID, opt.ChatID); err != nil {
			r.l.Warnf(ctx, "%s: update chat id: %v", r.dsn("EnsureUser"), err)
		}
	}

	const query = `SELECT id, chat_id, exercise_goal, food_log_goal, created_at FROM users WHERE id = ?`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, opt.UserID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureUser"), err)
		return model.User{}, repository.ErrFailedToGet
	}
	user.IsNew = affected == 1
	return user, nil
}

// ListUsers returns every user ordered by creation time.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, chat_id, exercise_goal, food_log_goal, created_at FROM users ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ErrFailedToList
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (model.User, error) {
	var (
		user      model.User
		createdAt string
	)
	if err := s.Scan(&user.ID, &user.ChatID, &user.ExerciseGoal, &user.FoodLogGoal, &createdAt); err != nil {
		return model.User{}, err
	}
	user.CreatedAt = parseTime(createdAt)
	return user, nil
}
