package http

import (
	"strings"
	"time"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health"
	"health-tracker/internal/model"
	"health-tracker/pkg/response"
)

const whatsappPrefix = "whatsapp:"

// --- Request DTOs ---

// messageReq accepts both Twilio form posts and plain JSON.
type messageReq struct {
	Body   string `form:"Body"`
	From   string `form:"From"`
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

func (r messageReq) userID() string {
	if r.UserID != "" {
		return strings.TrimSpace(r.UserID)
	}
	return strings.TrimSpace(strings.TrimPrefix(r.From, whatsappPrefix))
}

func (r messageReq) text() string {
	if r.Text != "" {
		return r.Text
	}
	return r.Body
}

func (r messageReq) validate() error {
	if r.userID() == "" {
		return health.ErrEmptyUserID
	}
	if strings.TrimSpace(r.text()) == "" {
		return health.ErrEmptyInput
	}
	return nil
}

func (r messageReq) toScope() model.Scope {
	return model.Scope{UserID: r.userID()}
}

func (r messageReq) toInput() health.MessageInput {
	return health.MessageInput{Text: r.text()}
}

// ---

type logsReq struct {
	Limit int `form:"limit"`
}

func (r logsReq) toInput() health.ListLogsInput {
	limit := r.Limit
	if limit < 0 || limit > 500 {
		limit = 0
	}
	return health.ListLogsInput{Limit: limit}
}

// ---

type summaryReq struct {
	Days int `form:"days"`
}

func (r summaryReq) days() int {
	if r.Days <= 0 || r.Days > 365 {
		return health.DefaultSummaryDays
	}
	return r.Days
}

// ---

type verifyReq struct {
	PhoneNumber string `json:"phone_number"`
}

func (r verifyReq) validate() error {
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return health.ErrEmptyUserID
	}
	return nil
}

// --- Response DTOs ---

type messageResp struct {
	Success        bool                      `json:"success"`
	Classification classifier.Classification `json:"classification"`
	Response       string                    `json:"response"`
}

func (h *handler) newMessageResp(out health.MessageOutput) messageResp {
	return messageResp{
		Success:        true,
		Classification: out.Classification,
		Response:       out.Response,
	}
}

type exerciseDetail struct {
	Duration int    `json:"duration"`
	Type     string `json:"type"`
	Distance string `json:"distance"`
}

type foodDetail struct {
	Description string `json:"description"`
}

type processedResp struct {
	Exercise *exerciseDetail `json:"exercise,omitempty"`
	Food     *foodDetail     `json:"food,omitempty"`
}

type logResp struct {
	ID         string        `json:"id"`
	Category   string        `json:"category"`
	Timestamp  time.Time     `json:"timestamp"`
	RawMessage string        `json:"raw_message"`
	Processed  processedResp `json:"processed"`
}

type logsResp struct {
	Logs []logResp `json:"logs"`
}

func (h *handler) newLogsResp(out health.ListLogsOutput) logsResp {
	logs := make([]logResp, len(out.Logs))
	for i, e := range out.Logs {
		item := logResp{
			ID:         e.ID,
			Category:   e.Kind,
			Timestamp:  e.Date,
			RawMessage: e.RawMessage,
		}
		switch e.Kind {
		case health.LogKindExercise:
			item.Processed.Exercise = &exerciseDetail{Duration: e.Duration, Type: e.ExerciseType, Distance: e.Distance}
		case health.LogKindFood:
			item.Processed.Food = &foodDetail{Description: e.FoodItems}
		}
		logs[i] = item
	}
	return logsResp{Logs: logs}
}

type summaryResp struct {
	ExerciseCount           int            `json:"exercise_count"`
	AverageExerciseDuration int            `json:"average_exercise_duration"`
	ExerciseTypes           map[string]int `json:"exercise_types"`
	FoodLogCount            int            `json:"food_log_count"`
	StartDate               response.Date  `json:"start_date"`
	EndDate                 response.Date  `json:"end_date"`
}

func (h *handler) newSummaryResp(s health.StatusSummary) summaryResp {
	return summaryResp{
		ExerciseCount:           s.ExerciseCount,
		AverageExerciseDuration: s.AverageDuration,
		ExerciseTypes:           s.ExerciseTypes,
		FoodLogCount:            s.FoodLogCount,
		StartDate:               response.Date(s.From),
		EndDate:                 response.Date(s.To),
	}
}

type userResp struct {
	ID        string    `json:"id"`
	IsNew     bool      `json:"is_new"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		IsNew:     u.IsNew,
		Verified:  true,
		CreatedAt: u.CreatedAt,
	}
}
