package model

import "time"

// TimeSlot is a fixed-width interval of schedulable time. Slots are value
// objects generated fresh per scheduling run; they are never persisted.
// EndTime is always StartTime plus the configured slot duration.
type TimeSlot struct {
	StartTime time.Time
	EndTime   time.Time
	Task      *Task // nil while the slot is free; set at most once per run
}

// Free reports whether the slot has no task assigned.
func (s TimeSlot) Free() bool {
	return s.Task == nil
}
