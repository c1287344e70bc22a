package repository

// ListTasksOptions holds the parameters for listing tasks from the store.
type ListTasksOptions struct {
	IncludeCompleted bool   // false = scheduler input (incomplete tasks only)
	Tag              string // Filter by a specific tag
	Limit            int    // Max number of results (default 100)
	Offset           int    // Pagination offset
}
