package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskplanner/config"
	"taskplanner/internal/model"
)

// Settings is the validated scheduling window: the parsed form of
// config.SchedulerConfig. Build it with ParseSettings.
type Settings struct {
	WorkingDays         map[time.Weekday]bool
	DayStartMinute      int // minutes after midnight
	DayEndMinute        int
	SlotDuration        time.Duration
	DefaultPriority     int
	DefaultTimeEstimate int // minutes
	ScheduleHorizonDays int
	DisplayHorizonDays  int
	Location            *time.Location
}

// ParseSettings validates the raw scheduler config and converts it into
// Settings. Malformed configuration fails here, at startup, before any
// scheduling run can see it.
func ParseSettings(cfg config.SchedulerConfig) (Settings, error) {
	start, err := parseClock(cfg.WorkingHoursStart)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: start %q: %v", ErrInvalidWorkingHours, cfg.WorkingHoursStart, err)
	}
	end, err := parseClock(cfg.WorkingHoursEnd)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: end %q: %v", ErrInvalidWorkingHours, cfg.WorkingHoursEnd, err)
	}
	if end <= start {
		return Settings{}, fmt.Errorf("%w: end %q not after start %q", ErrInvalidWorkingHours, cfg.WorkingHoursEnd, cfg.WorkingHoursStart)
	}

	if len(cfg.WorkingDays) == 0 {
		return Settings{}, ErrNoWorkingDays
	}
	days := make(map[time.Weekday]bool, len(cfg.WorkingDays))
	for _, d := range cfg.WorkingDays {
		if d < 0 || d > 6 {
			return Settings{}, fmt.Errorf("%w: weekday %d out of range 0..6", ErrNoWorkingDays, d)
		}
		days[time.Weekday(d)] = true
	}

	if cfg.SlotDurationMinutes <= 0 {
		return Settings{}, fmt.Errorf("%w: %d minutes", ErrInvalidSlotDuration, cfg.SlotDurationMinutes)
	}
	if cfg.DefaultPriority < 1 || cfg.DefaultPriority > 5 {
		return Settings{}, fmt.Errorf("%w: default priority %d", ErrInvalidPriority, cfg.DefaultPriority)
	}
	if cfg.DefaultTimeEstimate <= 0 {
		return Settings{}, fmt.Errorf("%w: default estimate %d minutes", ErrInvalidEstimate, cfg.DefaultTimeEstimate)
	}
	if cfg.ScheduleHorizonDays <= 0 || cfg.DisplayHorizonDays <= 0 {
		return Settings{}, fmt.Errorf("%w: schedule=%d display=%d", ErrInvalidHorizon, cfg.ScheduleHorizonDays, cfg.DisplayHorizonDays)
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	return Settings{
		WorkingDays:         days,
		DayStartMinute:      start,
		DayEndMinute:        end,
		SlotDuration:        time.Duration(cfg.SlotDurationMinutes) * time.Minute,
		DefaultPriority:     cfg.DefaultPriority,
		DefaultTimeEstimate: cfg.DefaultTimeEstimate,
		ScheduleHorizonDays: cfg.ScheduleHorizonDays,
		DisplayHorizonDays:  cfg.DisplayHorizonDays,
		Location:            loc,
	}, nil
}

// parseClock parses an "HH:MM" 24-hour string into minutes after midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// RunInput is the input for a scheduling run.
type RunInput struct {
	StartDate time.Time // zero value = today
	Days      int       // 0 = configured schedule horizon
}

// RunOutput is the result of a scheduling run. Tasks come back in ranked
// order with ScheduledTime filled in where placement succeeded.
type RunOutput struct {
	RunID string
	Tasks []model.Task
	Stats Statistics
}

// Statistics are the derived counters over the task collection.
type Statistics struct {
	TotalTasks        int
	ScheduledTasks    int
	ScheduledOverdue  int
	CompletedTasks    int
	UpcomingDeadlines int // deadline within the next 3 days, still in the future
	OverdueTasks      int // deadline in the past and not completed
}
