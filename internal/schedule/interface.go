package schedule

import (
	"context"
	"time"

	"taskplanner/internal/model"
	"taskplanner/pkg/gcalendar"
)

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Run executes one full scheduling run: collect open tasks, rank them,
	// generate the slot grid, place tasks, and persist each ScheduledTime.
	// Concurrent calls are serialized internally; a run sees one consistent
	// grid snapshot.
	Run(ctx context.Context, input RunInput) (RunOutput, error)

	// TimeSlots generates the slot grid for display, without placing anything.
	// days <= 0 uses the configured display horizon.
	TimeSlots(ctx context.Context, startDate time.Time, days int) []model.TimeSlot

	// Statistics computes the derived counters over the current task collection.
	Statistics(ctx context.Context) (Statistics, error)

	// TasksForDay returns tasks whose ScheduledTime falls on the given calendar day.
	TasksForDay(ctx context.Context, date time.Time) ([]model.Task, error)
}

// EventPublisher pushes a placed task's contiguous block to an external
// calendar. Publishing is best-effort: failures never affect placement.
type EventPublisher interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
