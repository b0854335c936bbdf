package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"health-tracker/internal/classifier"
	"health-tracker/internal/health/repository"
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

var errBackend = errors.New("backend unavailable")

// mockRepo is an in-memory repository.Repository that counts calls.
type mockRepo struct {
	mu sync.Mutex

	users     map[string]model.User
	exercises []model.ExerciseRecord
	foods     []model.FoodRecord

	ensureErr       error
	createExErr     error
	createFoodErr   error
	listExErr       error
	listFoodErr     error
	listUsersErr    error
	ensureCalls     int
	createExCalls   int
	createFoodCalls int
	lastExercise    repository.CreateExerciseLogOptions
	lastFood        repository.CreateFoodLogOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]model.User{}}
}

func (m *mockRepo) EnsureUser(ctx context.Context, opt repository.EnsureUserOptions) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureCalls++
	if m.ensureErr != nil {
		return model.User{}, m.ensureErr
	}
	u, ok := m.users[opt.UserID]
	if !ok {
		u = model.User{ID: opt.UserID, IsNew: true, ExerciseGoal: model.DefaultExerciseGoal, FoodLogGoal: model.DefaultFoodLogGoal}
	} else {
		u.IsNew = false
	}
	if opt.ChatID != 0 {
		u.ChatID = opt.ChatID
	}
	m.users[opt.UserID] = u
	return u, nil
}

func (m *mockRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listUsersErr != nil {
		return nil, m.listUsersErr
	}
	var out []model.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockRepo) CreateExerciseLog(ctx context.Context, opt repository.CreateExerciseLogOptions) (model.ExerciseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createExCalls++
	m.lastExercise = opt
	if m.createExErr != nil {
		return model.ExerciseRecord{}, m.createExErr
	}
	rec := model.ExerciseRecord{ID: "ex", UserID: opt.UserID, Date: time.Now(), Type: opt.Type, Duration: opt.Duration, Distance: opt.Distance}
	m.exercises = append(m.exercises, rec)
	return rec, nil
}

func (m *mockRepo) ListExerciseLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.ExerciseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listExErr != nil {
		return nil, m.listExErr
	}
	var out []model.ExerciseRecord
	for _, r := range m.exercises {
		if r.UserID == opt.UserID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateFoodLog(ctx context.Context, opt repository.CreateFoodLogOptions) (model.FoodRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createFoodCalls++
	m.lastFood = opt
	if m.createFoodErr != nil {
		return model.FoodRecord{}, m.createFoodErr
	}
	rec := model.FoodRecord{ID: "food", UserID: opt.UserID, Date: time.Now(), FoodItems: opt.FoodItems}
	m.foods = append(m.foods, rec)
	return rec, nil
}

func (m *mockRepo) ListFoodLogs(ctx context.Context, opt repository.ListLogsOptions) ([]model.FoodRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listFoodErr != nil {
		return nil, m.listFoodErr
	}
	var out []model.FoodRecord
	for _, r := range m.foods {
		if r.UserID == opt.UserID {
			out = append(out, r)
		}
	}
	return out, nil
}

// stubClassifier returns a fixed result, or the keyword rules when result is nil.
type stubClassifier struct {
	result *classifier.Classification
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, raw string) classifier.Classification {
	s.calls++
	if s.result != nil {
		return *s.result
	}
	return classifier.ClassifyFallback(raw)
}

func intPtr(n int) *int { return &n }

var fixedNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockRepo, clf classifier.Classifier) *implUseCase {
	uc := New(&mockLogger{}, repo, clf, time.UTC)
	uc.now = func() time.Time { return fixedNow }
	return uc
}
