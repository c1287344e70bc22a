package usecase

import (
	"context"
	"fmt"
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
	"taskplanner/internal/task/repository"
)

// upcomingWindow is how far ahead a deadline counts as "upcoming".
const upcomingWindow = 3 * 24 * time.Hour

// Statistics computes the derived counters over the current task collection.
func (uc *implUseCase) Statistics(ctx context.Context) (schedule.Statistics, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{IncludeCompleted: true})
	if err != nil {
		return schedule.Statistics{}, fmt.Errorf("%w: %v", schedule.ErrTaskCollect, err)
	}
	return computeStatistics(tasks, uc.now()), nil
}

// TasksForDay returns tasks whose ScheduledTime falls on the same calendar
// day as date, in the configured timezone.
func (uc *implUseCase) TasksForDay(ctx context.Context, date time.Time) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{IncludeCompleted: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrTaskCollect, err)
	}
	return tasksForDay(tasks, date, uc.settings.Location), nil
}

// computeStatistics is a pure filter pass over already-placed state.
func computeStatistics(tasks []model.Task, now time.Time) schedule.Statistics {
	stats := schedule.Statistics{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status() {
		case model.ScheduleStatusScheduled:
			stats.ScheduledTasks++
		case model.ScheduleStatusScheduledOverdue:
			stats.ScheduledTasks++
			stats.ScheduledOverdue++
		}
		if t.Completed {
			stats.CompletedTasks++
		}
		if t.Deadline == nil {
			continue
		}
		if t.Deadline.After(now) {
			if t.Deadline.Sub(now) <= upcomingWindow {
				stats.UpcomingDeadlines++
			}
		} else if !t.Completed {
			stats.OverdueTasks++
		}
	}
	return stats
}

func tasksForDay(tasks []model.Task, date time.Time, loc *time.Location) []model.Task {
	day := date.In(loc)
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.ScheduledTime == nil {
			continue
		}
		st := t.ScheduledTime.In(loc)
		if st.Year() == day.Year() && st.Month() == day.Month() && st.Day() == day.Day() {
			out = append(out, t)
		}
	}
	return out
}
