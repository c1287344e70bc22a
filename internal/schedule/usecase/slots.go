package usecase

import "taskplanner/internal/model"

// findConsecutiveSlots scans the ordered slot sequence for the earliest run
// of count free, back-to-back slots. It returns nil when no such run exists.
//
// Occupied slots are never accepted into a run. Adjacency is a timestamp
// check against the last accepted slot's EndTime, so an occupied slot in the
// middle of free neighbours breaks the run (the next free slot's StartTime no
// longer lines up), and so do day boundaries and non-working-day gaps, with
// no calendar awareness needed here. O(n) in slot count.
func findConsecutiveSlots(slots []*model.TimeSlot, count int) []*model.TimeSlot {
	if count <= 0 || len(slots) == 0 {
		return nil
	}

	run := make([]*model.TimeSlot, 0, count)
	for _, s := range slots {
		if s.Task != nil {
			continue
		}

		if len(run) > 0 && !s.StartTime.Equal(run[len(run)-1].EndTime) {
			run = run[:0]
		}
		run = append(run, s)

		if len(run) == count {
			return run
		}
	}
	return nil
}
