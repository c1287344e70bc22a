package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
	"taskplanner/internal/task/repository"
	pkgLog "taskplanner/pkg/log"
)

// Display-grid cache bounds. Full scheduling runs never read this cache;
// every run builds its own grid.
const (
	gridCacheSize = 64
	gridCacheTTL  = time.Minute
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	calendar   schedule.EventPublisher // nil when calendar publishing is disabled
	calendarID string                  // empty means the publisher's default calendar
	settings   schedule.Settings

	gridCache *expirable.LRU[string, []model.TimeSlot]

	// runMu serializes scheduling runs: concurrent runs against the same task
	// collection are not supported.
	runMu sync.Mutex

	// now is swappable in tests; every run captures it exactly once for ranking.
	now func() time.Time
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar schedule.EventPublisher,
	calendarID string,
	settings schedule.Settings,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		settings:   settings,
		gridCache:  expirable.NewLRU[string, []model.TimeSlot](gridCacheSize, nil, gridCacheTTL),
		now:        time.Now,
	}
}
