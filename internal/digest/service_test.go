package digest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-tracker/internal/health"
	"health-tracker/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeUseCase struct {
	health.UseCase // unused methods panic

	users      []model.User
	usersErr   error
	failFor    string
	daysAsked  []int
	summarized []string
}

func (f *fakeUseCase) ListRecipients(ctx context.Context) ([]model.User, error) {
	return f.users, f.usersErr
}

func (f *fakeUseCase) Summarize(ctx context.Context, sc model.Scope, days int) (health.StatusSummary, error) {
	f.summarized = append(f.summarized, sc.UserID)
	f.daysAsked = append(f.daysAsked, days)
	if sc.UserID == f.failFor {
		return health.StatusSummary{}, errors.New("sheets down")
	}
	return health.StatusSummary{UserID: sc.UserID, Days: days, ExerciseCount: 2}, nil
}

type sent struct {
	chatID int64
	text   string
	mode   string
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []sent
	failFor int64
}

func (f *fakeSender) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if chatID == f.failFor {
		return errors.New("chat not found")
	}
	f.sent = append(f.sent, sent{chatID: chatID, text: text, mode: parseMode})
	return nil
}

func TestNew(t *testing.T) {
	uc, sender := &fakeUseCase{}, &fakeSender{}

	s, err := New(&mockLogger{}, uc, sender, Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSchedule, s.cfg.Schedule)
	assert.Equal(t, DefaultLookbackDays, s.cfg.LookbackDays)
	assert.Equal(t, time.UTC, s.cfg.Location)

	_, err = New(&mockLogger{}, uc, sender, Config{Schedule: "every monday"})
	assert.Error(t, err)

	_, err = New(&mockLogger{}, uc, nil, Config{})
	assert.Error(t, err)
}

func TestRunOnce(t *testing.T) {
	uc := &fakeUseCase{users: []model.User{
		{ID: "telegram_1", ChatID: 11},
		{ID: "telegram_2", ChatID: 22},
		{ID: "telegram_3", ChatID: 33},
	}}
	sender := &fakeSender{failFor: 33}
	uc.failFor = "telegram_2"

	s, err := New(&mockLogger{}, uc, sender, Config{LookbackDays: 14})
	require.NoError(t, err)

	res, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Recipients: 3, Sent: 1, Failed: 2}, res)
	assert.Equal(t, []string{"telegram_1", "telegram_2", "telegram_3"}, uc.summarized)
	assert.Equal(t, []int{14, 14, 14}, uc.daysAsked)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(11), sender.sent[0].chatID)
	assert.Equal(t, "Markdown", sender.sent[0].mode)
	assert.Contains(t, sender.sent[0].text, "Your Weekly Health Report")
	assert.Contains(t, sender.sent[0].text, "Exercise sessions: 2 sessions")
}

func TestRunOnce_RecipientsError(t *testing.T) {
	uc := &fakeUseCase{usersErr: errors.New("boom")}
	s, err := New(&mockLogger{}, uc, &fakeSender{}, Config{})
	require.NoError(t, err)

	_, err = s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := New(&mockLogger{}, &fakeUseCase{}, &fakeSender{}, Config{Schedule: "*/5 * * * *"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	s.mu.Lock()
	entries := len(s.cron.Entries())
	s.mu.Unlock()
	assert.Equal(t, 1, entries)

	cancel()
	assert.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.cron == nil
	}, time.Second, 10*time.Millisecond)
}
