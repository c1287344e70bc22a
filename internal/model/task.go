package model

import "time"

// Task represents a schedulable work item stored in Memos.
// The scheduler only reads Priority, TimeEstimate and Deadline, and writes
// ScheduledTime; everything else belongs to the task store.
type Task struct {
	ID            string     // Memos internal ID (name field, e.g. "memos/123")
	UID           string     // Memos short UID
	Description   string     // Free-text task description (first content line)
	Tags          []string   // Extracted tags
	Priority      int        // 1 (highest) .. 5 (lowest)
	TimeEstimate  int        // Estimated duration in minutes, always positive
	Deadline      *time.Time // nil when the task has no deadline
	ScheduledTime *time.Time // nil until the scheduler places the task
	Completed     bool
	MemoURL       string // Deep link to the Memos web UI
	CreateTime    string // RFC3339 creation time string from Memos API
	UpdateTime    string // RFC3339 last updated time string from Memos API
}

// ScheduleStatus is the derived placement state of a task after a run.
type ScheduleStatus string

const (
	ScheduleStatusUnscheduled ScheduleStatus = "unscheduled"
	ScheduleStatusScheduled   ScheduleStatus = "scheduled"
	// ScheduleStatusScheduledOverdue marks a deadline task that could only be
	// placed after its deadline (best-effort pass).
	ScheduleStatusScheduledOverdue ScheduleStatus = "scheduled_overdue"
)

// Status derives the placement state from ScheduledTime, TimeEstimate and
// Deadline. It never mutates the task.
func (t Task) Status() ScheduleStatus {
	if t.ScheduledTime == nil {
		return ScheduleStatusUnscheduled
	}
	if t.Deadline != nil {
		finish := t.ScheduledTime.Add(time.Duration(t.TimeEstimate) * time.Minute)
		if finish.After(*t.Deadline) {
			return ScheduleStatusScheduledOverdue
		}
	}
	return ScheduleStatusScheduled
}
