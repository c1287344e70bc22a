package schedule_test

import (
	"errors"
	"testing"
	"time"

	"taskplanner/config"
	"taskplanner/internal/schedule"
)

func validSchedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "17:00",
		WorkingDays:         []int{1, 2, 3, 4, 5},
		SlotDurationMinutes: 30,
		DefaultPriority:     3,
		DefaultTimeEstimate: 30,
		ScheduleHorizonDays: 14,
		DisplayHorizonDays:  7,
		Timezone:            "UTC",
	}
}

func TestParseSettings(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, err := schedule.ParseSettings(validSchedulerConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.DayStartMinute != 9*60 || s.DayEndMinute != 17*60 {
			t.Errorf("working window parsed wrong: %d..%d", s.DayStartMinute, s.DayEndMinute)
		}
		if s.SlotDuration != 30*time.Minute {
			t.Errorf("slot duration = %v", s.SlotDuration)
		}
		if !s.WorkingDays[time.Monday] || s.WorkingDays[time.Sunday] {
			t.Error("working day set parsed wrong")
		}
	})

	t.Run("Malformed Hour String", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.WorkingHoursStart = "9am"
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrInvalidWorkingHours) {
			t.Errorf("expected ErrInvalidWorkingHours, got %v", err)
		}
	})

	t.Run("End Before Start", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.WorkingHoursEnd = "08:00"
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrInvalidWorkingHours) {
			t.Errorf("expected ErrInvalidWorkingHours, got %v", err)
		}
	})

	t.Run("No Working Days", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.WorkingDays = nil
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrNoWorkingDays) {
			t.Errorf("expected ErrNoWorkingDays, got %v", err)
		}
	})

	t.Run("Weekday Out Of Range", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.WorkingDays = []int{7}
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrNoWorkingDays) {
			t.Errorf("expected ErrNoWorkingDays, got %v", err)
		}
	})

	t.Run("Bad Slot Duration", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.SlotDurationMinutes = 0
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrInvalidSlotDuration) {
			t.Errorf("expected ErrInvalidSlotDuration, got %v", err)
		}
	})

	t.Run("Bad Default Priority", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.DefaultPriority = 6
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Bad Horizon", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.ScheduleHorizonDays = 0
		if _, err := schedule.ParseSettings(cfg); !errors.Is(err, schedule.ErrInvalidHorizon) {
			t.Errorf("expected ErrInvalidHorizon, got %v", err)
		}
	})

	t.Run("Bad Timezone", func(t *testing.T) {
		cfg := validSchedulerConfig()
		cfg.Timezone = "Not/AZone"
		if _, err := schedule.ParseSettings(cfg); err == nil {
			t.Error("expected an error for an unknown timezone")
		}
	})
}
