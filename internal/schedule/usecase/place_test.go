package usecase

import (
	"testing"
	"time"

	"taskplanner/internal/model"
)

// buildGrid generates the pointer view of a fresh grid, the way Run does.
func buildGrid(start time.Time, days int) []*model.TimeSlot {
	grid := generateTimeSlots(start, days, testSettings())
	slots := make([]*model.TimeSlot, len(grid))
	for i := range grid {
		slots[i] = &grid[i]
	}
	return slots
}

func refs(tasks []model.Task) []*model.Task {
	out := make([]*model.Task, len(tasks))
	for i := range tasks {
		out[i] = &tasks[i]
	}
	return out
}

func TestPlaceTasks(t *testing.T) {
	slotWidth := 30 * time.Minute
	tomorrow9 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Deadline Task Takes First Block Before Deadline", func(t *testing.T) {
		// One 60-minute priority-1 task due tomorrow noon; grid starts tomorrow.
		deadline := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
		tasks := []model.Task{deadlineTask("t", 1, 60, deadline)}
		slots := buildGrid(tomorrow9, 14)

		placeTasks(refs(tasks), slots, slotWidth)

		if tasks[0].ScheduledTime == nil {
			t.Fatal("expected the task to be scheduled")
		}
		if !tasks[0].ScheduledTime.Equal(tomorrow9) {
			t.Errorf("expected 09:00 start, got %v", tasks[0].ScheduledTime)
		}

		assigned := 0
		for _, s := range slots {
			if s.Task != nil {
				assigned++
			}
		}
		if assigned != 2 {
			t.Errorf("expected 2 occupied slots for 60 minutes, got %d", assigned)
		}
	})

	t.Run("Pass One Respects The Deadline", func(t *testing.T) {
		deadline := time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC)
		tasks := []model.Task{deadlineTask("t", 2, 90, deadline)}

		placeTasks(refs(tasks), buildGrid(testNow, 14), slotWidth)

		if tasks[0].ScheduledTime == nil {
			t.Fatal("expected placement")
		}
		finish := tasks[0].ScheduledTime.Add(90 * time.Minute)
		if finish.After(deadline) {
			t.Errorf("pass-1 placement finishes at %v, past the deadline %v", finish, deadline)
		}
	})

	t.Run("Higher Priority Scheduled Earlier", func(t *testing.T) {
		tasks := rankTasks([]model.Task{
			minutesTask("b", 5, 60),
			minutesTask("a", 1, 60),
		}, testNow)

		placeTasks(refs(tasks), buildGrid(testNow, 14), slotWidth)

		var a, b *model.Task
		for i := range tasks {
			switch tasks[i].ID {
			case "a":
				a = &tasks[i]
			case "b":
				b = &tasks[i]
			}
		}
		if a.ScheduledTime == nil || b.ScheduledTime == nil {
			t.Fatal("expected both tasks to be scheduled")
		}
		if !a.ScheduledTime.Before(*b.ScheduledTime) {
			t.Errorf("priority 1 at %v should precede priority 5 at %v", a.ScheduledTime, b.ScheduledTime)
		}
	})

	t.Run("Fragmented Grid Leaves Task Unscheduled", func(t *testing.T) {
		// 90-minute task; only two isolated free slots around an occupied one.
		start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		slots := contiguousSlots(start, 3)
		blocker := minutesTask("blocker", 1, 30)
		slots[1].Task = &blocker

		tasks := []model.Task{minutesTask("big", 1, 90)}
		placeTasks(refs(tasks), slots, slotWidth)

		if tasks[0].ScheduledTime != nil {
			t.Errorf("expected the task to stay unscheduled, got %v", tasks[0].ScheduledTime)
		}
	})

	t.Run("No Slot Assigned Twice", func(t *testing.T) {
		tasks := rankTasks([]model.Task{
			minutesTask("t1", 1, 60),
			minutesTask("t2", 2, 90),
			minutesTask("t3", 3, 30),
			deadlineTask("t4", 1, 120, time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC)),
		}, testNow)
		slots := buildGrid(testNow, 5)

		placeTasks(refs(tasks), slots, slotWidth)

		perTask := map[string]int{}
		for _, s := range slots {
			if s.Task != nil {
				perTask[s.Task.ID]++
			}
		}
		want := map[string]int{"t1": 2, "t2": 3, "t3": 1, "t4": 4}
		for id, n := range want {
			if perTask[id] != n {
				t.Errorf("task %s occupies %d slots, want %d", id, perTask[id], n)
			}
		}
	})

	t.Run("Missed Deadline Falls To Best Effort", func(t *testing.T) {
		// Deadline before any slot exists: pass 1 finds nothing, pass 2 places
		// it anyway and the derived status flags it.
		deadline := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		tasks := []model.Task{deadlineTask("late", 1, 60, deadline)}

		placeTasks(refs(tasks), buildGrid(testNow, 14), slotWidth)

		if tasks[0].ScheduledTime == nil {
			t.Fatal("expected best-effort placement")
		}
		if got := tasks[0].Status(); got != model.ScheduleStatusScheduledOverdue {
			t.Errorf("expected scheduled_overdue, got %s", got)
		}
	})

	t.Run("Placed Task Never Reassigned", func(t *testing.T) {
		scheduled := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
		tasks := []model.Task{minutesTask("done", 1, 30)}
		tasks[0].ScheduledTime = &scheduled

		slots := buildGrid(testNow, 2)
		placeTasks(refs(tasks), slots, slotWidth)

		if !tasks[0].ScheduledTime.Equal(scheduled) {
			t.Error("already-scheduled task was moved")
		}
		for _, s := range slots {
			if s.Task != nil {
				t.Error("no slot should be consumed for an already-scheduled task")
			}
		}
	})

	t.Run("Empty Grid Is A No Op", func(t *testing.T) {
		tasks := []model.Task{minutesTask("t", 1, 30)}
		placeTasks(refs(tasks), nil, slotWidth)
		if tasks[0].ScheduledTime != nil {
			t.Error("expected no placement on an empty grid")
		}
	})
}

func TestSlotsNeeded(t *testing.T) {
	width := 30 * time.Minute
	cases := []struct {
		estimate int
		want     int
	}{
		{30, 1},
		{31, 2},
		{60, 2},
		{90, 3},
		{1, 1},
		{0, 0},
	}
	for _, c := range cases {
		if got := slotsNeeded(c.estimate, width); got != c.want {
			t.Errorf("slotsNeeded(%d) = %d, want %d", c.estimate, got, c.want)
		}
	}
}
