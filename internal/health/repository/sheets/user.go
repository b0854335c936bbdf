package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"health-tracker/internal/health/repository"
	"health-tracker/internal/model"
)

// Users tab: id | chat_id | exercise_goal | food_log_goal | created_at
const userColumns = "A:E"

// EnsureUser appends a user row if none exists for the id.
func (r *implRepository) EnsureUser(ctx context.Context, opt repository.EnsureUserOptions) (model.User, error) {
	if opt.UserID == "" {
		return model.User{}, repository.ErrUserIDRequired
	}

	rows, first, err := r.readRows(ctx, r.cfg.UsersSheet, userColumns)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureUser"), err)
		return model.User{}, repository.ErrFailedToGet
	}

	for i, row := range rows {
		if cell(row, 0) != opt.UserID {
			continue
		}
		user := userFromRow(row)
		if opt.ChatID != 0 && user.ChatID != opt.ChatID {
			ref := fmt.Sprintf("B%d", first+i)
			if err := r.updateCell(ctx, r.cfg.UsersSheet, ref, strconv.FormatInt(opt.ChatID, 10)); err != nil {
				r.l.Warnf(ctx, "%s: update chat id: %v", r.dsn("EnsureUser"), err)
			} else {
				user.ChatID = opt.ChatID
			}
		}
		return user, nil
	}

	user := model.User{
		ID:           opt.UserID,
		ChatID:       opt.ChatID,
		IsNew:        true,
		ExerciseGoal: model.DefaultExerciseGoal,
		FoodLogGoal:  model.DefaultFoodLogGoal,
		CreatedAt:    r.now().UTC(),
	}
	row := []any{
		user.ID,
		strconv.FormatInt(user.ChatID, 10),
		strconv.Itoa(user.ExerciseGoal),
		strconv.Itoa(user.FoodLogGoal),
		user.CreatedAt.Format(time.RFC3339Nano),
	}
	if err := r.appendRow(ctx, r.cfg.UsersSheet, userColumns, row); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureUser"), err)
		return model.User{}, repository.ErrFailedToInsert
	}
	return user, nil
}

// ListUsers returns every user in sheet order.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, _, err := r.readRows(ctx, r.cfg.UsersSheet, userColumns)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repository.ErrFailedToList
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		if cell(row, 0) == "" {
			continue
		}
		users = append(users, userFromRow(row))
	}
	return users, nil
}

func userFromRow(row []any) model.User {
	chatID, _ := strconv.ParseInt(cell(row, 1), 10, 64)
	return model.User{
		ID:           cell(row, 0),
		ChatID:       chatID,
		ExerciseGoal: cellInt(row, 2),
		FoodLogGoal:  cellInt(row, 3),
		CreatedAt:    cellTime(row, 4),
	}
}
