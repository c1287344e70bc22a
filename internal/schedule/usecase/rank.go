package usecase

import (
	"sort"
	"time"

	"taskplanner/internal/model"
)

// urgencyWindow is how close a deadline must be for a task to outrank
// everything non-urgent.
const urgencyWindow = 48 * time.Hour

// rankTasks returns a new slice ordered by the placement policy. The input is
// not modified. now is captured once by the caller and threaded through every
// comparison, so urgency cannot flip mid-sort.
func rankTasks(tasks []model.Task, now time.Time) []model.Task {
	ranked := make([]model.Task, len(tasks))
	copy(ranked, tasks)

	// Stable sort keeps original relative order as the final tiebreak.
	sort.SliceStable(ranked, func(i, j int) bool {
		return taskBefore(ranked[i], ranked[j], now)
	})
	return ranked
}

// taskBefore is the comparator chain: urgency, priority, deadline proximity,
// deadline presence, then shorter estimate.
func taskBefore(a, b model.Task, now time.Time) bool {
	au, bu := isUrgent(a, now), isUrgent(b, now)
	if au != bu {
		return au
	}

	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
		return a.Deadline.Before(*b.Deadline)
	}

	if (a.Deadline != nil) != (b.Deadline != nil) {
		return a.Deadline != nil
	}

	return a.TimeEstimate < b.TimeEstimate
}

// isUrgent reports whether the task's deadline falls within the urgency window.
func isUrgent(t model.Task, now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Sub(now) < urgencyWindow
}
