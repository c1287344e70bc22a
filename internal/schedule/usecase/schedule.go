package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
	"taskplanner/internal/task/repository"
	"taskplanner/pkg/gcalendar"
)

// Run executes one scheduling run. Runs are serialized: the whole run holds
// runMu so every task is placed against one consistent grid snapshot. No I/O
// happens between ranking and placement; persistence and calendar publishing
// follow placement and never feed back into it.
func (uc *implUseCase) Run(ctx context.Context, input schedule.RunInput) (schedule.RunOutput, error) {
	uc.runMu.Lock()
	defer uc.runMu.Unlock()

	if input.Days < 0 {
		return schedule.RunOutput{}, fmt.Errorf("%w: %d", schedule.ErrInvalidHorizon, input.Days)
	}
	days := input.Days
	if days == 0 {
		days = uc.settings.ScheduleHorizonDays
	}
	start := input.StartDate
	if start.IsZero() {
		start = uc.now()
	}

	runID := uuid.NewString()
	uc.l.Infof(ctx, "schedule run %s: horizon %d days from %s", runID, days, start.In(uc.settings.Location).Format("2006-01-02"))

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{IncludeCompleted: true})
	if err != nil {
		return schedule.RunOutput{}, fmt.Errorf("%w: %v", schedule.ErrTaskCollect, err)
	}

	// Capture now once: ranking urgency must not flip mid-sort.
	now := uc.now()
	ranked := rankTasks(incompleteOnly(tasks), now)

	grid := generateTimeSlots(start, days, uc.settings)
	slots := make([]*model.TimeSlot, len(grid))
	for i := range grid {
		slots[i] = &grid[i]
	}

	taskRefs := make([]*model.Task, len(ranked))
	for i := range ranked {
		taskRefs[i] = &ranked[i]
	}

	placeTasks(taskRefs, slots, uc.settings.SlotDuration)

	placed := 0
	for i := range ranked {
		if ranked[i].ScheduledTime == nil {
			continue
		}
		placed++

		// Each write is independently failable. A failed write keeps the
		// in-memory placement; the store simply lags until the next run.
		if err := uc.repo.SaveScheduledTime(ctx, ranked[i]); err != nil {
			uc.l.Errorf(ctx, "schedule run %s: persist failed for task %s: %v", runID, ranked[i].ID, err)
			continue
		}

		uc.publishEvent(ctx, runID, ranked[i])
	}

	// Statistics cover the whole collection: placed tasks carry their fresh
	// ScheduledTime, completed ones come straight from the store.
	all := append(append(make([]model.Task, 0, len(tasks)), ranked...), completedOnly(tasks)...)
	stats := computeStatistics(all, now)
	uc.l.Infof(ctx, "schedule run %s: placed %d of %d tasks", runID, placed, len(ranked))

	return schedule.RunOutput{RunID: runID, Tasks: ranked, Stats: stats}, nil
}

// publishEvent pushes the task's assigned block to the external calendar.
// Best-effort: failures are logged and never affect the placement.
func (uc *implUseCase) publishEvent(ctx context.Context, runID string, t model.Task) {
	if uc.calendar == nil || t.ScheduledTime == nil {
		return
	}

	end := t.ScheduledTime.Add(blockDuration(t, uc.settings.SlotDuration))
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Description,
		Description: t.MemoURL,
		StartTime:   *t.ScheduledTime,
		EndTime:     end,
		Timezone:    uc.settings.Location.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "schedule run %s: calendar publish failed for task %s: %v", runID, t.ID, err)
	}
}

// incompleteOnly filters down to the scheduler's input: completed tasks are
// never placed.
func incompleteOnly(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func completedOnly(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}
