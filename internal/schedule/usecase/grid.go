package usecase

import (
	"context"
	"fmt"
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/schedule"
)

// TimeSlots generates the slot grid for display. Results are cached briefly
// so repeated grid refreshes don't regenerate; callers get a copy, the cached
// slice is never handed out for mutation.
func (uc *implUseCase) TimeSlots(ctx context.Context, startDate time.Time, days int) []model.TimeSlot {
	if days <= 0 {
		days = uc.settings.DisplayHorizonDays
	}
	if startDate.IsZero() {
		startDate = uc.now()
	}

	key := fmt.Sprintf("%s/%d", startDate.In(uc.settings.Location).Format("2006-01-02"), days)
	if cached, ok := uc.gridCache.Get(key); ok {
		return cloneSlots(cached)
	}

	slots := generateTimeSlots(startDate, days, uc.settings)
	uc.gridCache.Add(key, slots)
	return cloneSlots(slots)
}

// generateTimeSlots builds the ordered slot sequence for the horizon.
// Pure: deterministic given inputs, no side effects.
//
// Each calendar day from startDate (truncated to midnight in the configured
// location) contributes slots only when its weekday is a working day. Slots
// run from the working-hours start; a trailing slot that would cross the end
// boundary is dropped. Non-working days contribute nothing, so the sequence
// has time gaps the consecutive-slot finder detects by timestamp.
func generateTimeSlots(startDate time.Time, days int, s schedule.Settings) []model.TimeSlot {
	if days <= 0 {
		return nil
	}

	start := startDate.In(s.Location)
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.Location)

	var slots []model.TimeSlot
	for i := 0; i < days; i++ {
		day := midnight.AddDate(0, 0, i)
		if !s.WorkingDays[day.Weekday()] {
			continue
		}

		dayEnd := day.Add(time.Duration(s.DayEndMinute) * time.Minute)
		for t := day.Add(time.Duration(s.DayStartMinute) * time.Minute); !t.Add(s.SlotDuration).After(dayEnd); t = t.Add(s.SlotDuration) {
			slots = append(slots, model.TimeSlot{
				StartTime: t,
				EndTime:   t.Add(s.SlotDuration),
			})
		}
	}
	return slots
}

func cloneSlots(slots []model.TimeSlot) []model.TimeSlot {
	out := make([]model.TimeSlot, len(slots))
	copy(out, slots)
	return out
}
