package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
	"taskplanner/internal/task/repository"
)

func TestComputeStatistics(t *testing.T) {
	scheduled := testNow.Add(26 * time.Hour)

	past := testNow.Add(-24 * time.Hour)
	soon := testNow.Add(48 * time.Hour)
	far := testNow.Add(10 * 24 * time.Hour)

	done := minutesTask("done", 3, 30)
	done.Completed = true

	overdueDone := deadlineTask("overdue-done", 3, 30, past)
	overdueDone.Completed = true

	placed := minutesTask("placed", 1, 60)
	placed.ScheduledTime = &scheduled

	latePlaced := deadlineTask("late", 1, 60, past)
	latePlaced.ScheduledTime = &scheduled

	tasks := []model.Task{
		placed,
		latePlaced,
		done,
		overdueDone,
		deadlineTask("soon", 2, 30, soon),
		deadlineTask("far", 2, 30, far),
		deadlineTask("missed", 2, 30, past),
	}

	stats := computeStatistics(tasks, testNow)

	if stats.TotalTasks != 7 {
		t.Errorf("TotalTasks = %d, want 7", stats.TotalTasks)
	}
	if stats.ScheduledTasks != 2 {
		t.Errorf("ScheduledTasks = %d, want 2", stats.ScheduledTasks)
	}
	if stats.ScheduledOverdue != 1 {
		t.Errorf("ScheduledOverdue = %d, want 1", stats.ScheduledOverdue)
	}
	if stats.CompletedTasks != 2 {
		t.Errorf("CompletedTasks = %d, want 2", stats.CompletedTasks)
	}
	if stats.UpcomingDeadlines != 1 {
		t.Errorf("UpcomingDeadlines = %d, want 1 (only the 2-day deadline)", stats.UpcomingDeadlines)
	}
	// "missed" and "late" are overdue; "overdue-done" is completed and is not.
	if stats.OverdueTasks != 2 {
		t.Errorf("OverdueTasks = %d, want 2", stats.OverdueTasks)
	}
}

func TestTasksForDay(t *testing.T) {
	tuesday9 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	tuesday16 := time.Date(2024, 1, 2, 16, 30, 0, 0, time.UTC)
	wednesday := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)

	t1 := minutesTask("t1", 1, 30)
	t1.ScheduledTime = &tuesday9
	t2 := minutesTask("t2", 2, 30)
	t2.ScheduledTime = &tuesday16
	t3 := minutesTask("t3", 3, 30)
	t3.ScheduledTime = &wednesday

	tasks := []model.Task{t1, t2, t3, minutesTask("unplaced", 4, 30)}

	got := tasksForDay(tasks, time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC), time.UTC)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks on Tuesday, got %d", len(got))
	}
	for _, task := range got {
		if task.ScheduledTime.Day() != 2 {
			t.Errorf("task %s is not on Tuesday", task.ID)
		}
	}
}

func TestStatisticsEndpointFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Collect Failure", func(t *testing.T) {
		repo := &mockTaskRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				return nil, errors.New("memos down")
			},
		}
		uc := newTestUseCase(repo, nil)

		if _, err := uc.Statistics(ctx); !errors.Is(err, schedule.ErrTaskCollect) {
			t.Errorf("expected ErrTaskCollect, got %v", err)
		}
	})

	t.Run("Includes Completed", func(t *testing.T) {
		repo := &mockTaskRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				if !opt.IncludeCompleted {
					t.Error("statistics must query the whole collection")
				}
				return []model.Task{minutesTask("t", 1, 30)}, nil
			},
		}
		uc := newTestUseCase(repo, nil)

		stats, err := uc.Statistics(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalTasks != 1 {
			t.Errorf("TotalTasks = %d, want 1", stats.TotalTasks)
		}
	})
}
