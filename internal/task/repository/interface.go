package repository

import (
	"context"

	"taskplanner/internal/model"
)

// TaskRepository is the task-store collaborator: it produces Task records for
// the scheduler and persists ScheduledTime back, one task at a time. The
// scheduler itself never touches storage.
type TaskRepository interface {
	// ListTasks returns tasks from the store. With IncludeCompleted false the
	// result is the scheduler's input: incomplete tasks only.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// SaveScheduledTime writes the task's ScheduledTime back to the store.
	// Each write is independently failable; a failure never rolls back the
	// in-memory placement.
	SaveScheduledTime(ctx context.Context, task model.Task) error
}
