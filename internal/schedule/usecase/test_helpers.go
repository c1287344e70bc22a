package usecase

import (
	"context"
	"time"

	"taskplanner/config"
	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
	"taskplanner/internal/task/repository"
	"taskplanner/pkg/gcalendar"
)

// Mock logger for testing
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

// Mock task repository with overridable behavior per test
type mockTaskRepo struct {
	listFunc func(opt repository.ListTasksOptions) ([]model.Task, error)
	saveFunc func(task model.Task) error
	saved    []model.Task
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockTaskRepo) SaveScheduledTime(ctx context.Context, task model.Task) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(task); err != nil {
			return err
		}
	}
	m.saved = append(m.saved, task)
	return nil
}

// Mock calendar publisher
type mockPublisher struct {
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	published  []gcalendar.CreateEventRequest
}

func (m *mockPublisher) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.published = append(m.published, req)
	if m.createFunc != nil {
		return m.createFunc(req)
	}
	return &gcalendar.Event{ID: "ev-1"}, nil
}

// testNow is a Monday before working hours. Tasks without deadlines are
// never urgent relative to it.
var testNow = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func testSettings() schedule.Settings {
	s, err := schedule.ParseSettings(config.SchedulerConfig{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "17:00",
		WorkingDays:         []int{1, 2, 3, 4, 5},
		SlotDurationMinutes: 30,
		DefaultPriority:     3,
		DefaultTimeEstimate: 30,
		ScheduleHorizonDays: 14,
		DisplayHorizonDays:  7,
		Timezone:            "UTC",
	})
	if err != nil {
		panic(err)
	}
	return s
}

func newTestUseCase(repo repository.TaskRepository, cal schedule.EventPublisher) *implUseCase {
	uc := New(&mockLogger{}, repo, cal, "", testSettings())
	uc.now = func() time.Time { return testNow }
	return uc
}

func minutesTask(id string, priority, estimate int) model.Task {
	return model.Task{ID: id, Description: id, Priority: priority, TimeEstimate: estimate}
}

func deadlineTask(id string, priority, estimate int, deadline time.Time) model.Task {
	t := minutesTask(id, priority, estimate)
	t.Deadline = &deadline
	return t
}
