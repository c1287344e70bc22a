package usecase

import (
	"time"

	"taskplanner/internal/model"
)

// assignment is the single record a placement produces: one task and its
// contiguous slot run. Slot occupancy and the task's ScheduledTime are both
// derived from it in apply, so the two can never disagree.
type assignment struct {
	task  *model.Task
	slots []*model.TimeSlot
}

func (a assignment) apply() {
	for _, s := range a.slots {
		s.Task = a.task
	}
	start := a.slots[0].StartTime
	a.task.ScheduledTime = &start
}

// placeTasks assigns ranked tasks to slots in two passes, mutating slots and
// tasks in place. Assignments are strictly monotonic: once a slot or task is
// taken within a run it is never cleared or reassigned.
//
// Pass 1 places deadline tasks into slots that finish no later than the
// deadline. Pass 2 is best-effort over the full grid for whatever is still
// unscheduled, including deadline tasks that missed pass 1 (those end up with
// a scheduled-but-overdue status rather than failing silently). Tasks with no
// sufficient contiguous block after both passes stay unscheduled; that is an
// expected outcome, not an error.
func placeTasks(ranked []*model.Task, slots []*model.TimeSlot, slotDuration time.Duration) {
	// Pass 1: deadline-constrained.
	for _, t := range ranked {
		if t.Deadline == nil || t.ScheduledTime != nil {
			continue
		}

		eligible := make([]*model.TimeSlot, 0, len(slots))
		for _, s := range slots {
			if s.Task == nil && !s.EndTime.After(*t.Deadline) {
				eligible = append(eligible, s)
			}
		}

		if run := findConsecutiveSlots(eligible, slotsNeeded(t.TimeEstimate, slotDuration)); run != nil {
			assignment{task: t, slots: run}.apply()
		}
	}

	// Pass 2: best-effort over the full grid.
	for _, t := range ranked {
		if t.ScheduledTime != nil {
			continue
		}
		if run := findConsecutiveSlots(slots, slotsNeeded(t.TimeEstimate, slotDuration)); run != nil {
			assignment{task: t, slots: run}.apply()
		}
	}
}

// blockDuration is the wall time covered by the task's assigned slot run.
func blockDuration(t model.Task, slotDuration time.Duration) time.Duration {
	return time.Duration(slotsNeeded(t.TimeEstimate, slotDuration)) * slotDuration
}

// slotsNeeded is ceil(estimate / slot width).
func slotsNeeded(estimateMinutes int, slotDuration time.Duration) int {
	width := int(slotDuration / time.Minute)
	if width <= 0 || estimateMinutes <= 0 {
		return 0
	}
	return (estimateMinutes + width - 1) / width
}
