package service

import (
	"fmt"
	"sort"

	"meetpoint/core/errors"
	"meetpoint/modules/recommendation/entity"
)

// TimeAggregator turns per-participant availability sets into ranked time
// ranges. It is a pure computation over the snapshot it is handed: no I/O,
// no shared state, safe to invoke concurrently for different meetings.
type TimeAggregator struct{}

// NewTimeAggregator creates a new time aggregator
func NewTimeAggregator() *TimeAggregator {
	return &TimeAggregator{}
}

// ComputeTimeRecommendation aggregates availability across all participants.
//
// Slots marked by every participant form the universal pool; if that pool is
// empty, the slots tied for the maximum overlap form the best-effort pool.
// The winning pool is grouped into maximal contiguous same-day ranges. A nil
// result means no participant has submitted any availability; that is not an
// error.
func (a *TimeAggregator) ComputeTimeRecommendation(
	participants []entity.Participant,
	totalParticipants int,
) (*entity.TimeRecommendation, *errors.AppError) {

	if err := a.validateAvailability(participants); err != nil {
		return nil, err
	}

	if totalParticipants <= 0 {
		return nil, nil
	}

	// 1. Tally participants per slot. Duplicate slots within one submission
	// count once.
	counts := map[entity.TimeSlot]int{}
	for _, p := range participants {
		seen := map[entity.TimeSlot]bool{}
		for _, slot := range p.Availability {
			if seen[slot] {
				continue
			}
			seen[slot] = true
			counts[slot]++
		}
	}

	if len(counts) == 0 {
		return nil, nil
	}

	// 2. Partition into universal vs best-effort pools.
	var universal []entity.TimeSlot
	maxCount := 0
	for slot, count := range counts {
		if count == totalParticipants {
			universal = append(universal, slot)
		}
		if count > maxCount && count < totalParticipants {
			maxCount = count
		}
	}

	if len(universal) > 0 {
		ranges := a.groupContiguous(universal, totalParticipants)
		return &entity.TimeRecommendation{
			Kind:    entity.KindUniversal,
			Ranges:  ranges,
			Summary: fmt.Sprintf("%d time range(s) where everyone is available", len(ranges)),
		}, nil
	}

	// 3. Best effort: keep every slot tied for the maximum overlap.
	var best []entity.TimeSlot
	for slot, count := range counts {
		if count == maxCount {
			best = append(best, slot)
		}
	}

	return &entity.TimeRecommendation{
		Kind:    entity.KindBestEffort,
		Ranges:  a.groupContiguous(best, maxCount),
		Summary: fmt.Sprintf("Best option: %d out of %d participants available", maxCount, totalParticipants),
	}, nil
}

// groupContiguous merges sorted slots into maximal same-day ranges. Two slots
// join the same range iff they share a day and their time indexes are
// adjacent.
func (a *TimeAggregator) groupContiguous(slots []entity.TimeSlot, attendeeCount int) []entity.TimeRange {
	if len(slots) == 0 {
		return nil
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].DayIndex != slots[j].DayIndex {
			return slots[i].DayIndex < slots[j].DayIndex
		}
		return slots[i].TimeIndex < slots[j].TimeIndex
	})

	ranges := []entity.TimeRange{{
		DayIndex:       slots[0].DayIndex,
		StartTimeIndex: slots[0].TimeIndex,
		EndTimeIndex:   slots[0].TimeIndex,
		AttendeeCount:  attendeeCount,
	}}

	for _, slot := range slots[1:] {
		last := &ranges[len(ranges)-1]
		if slot.DayIndex == last.DayIndex && slot.TimeIndex == last.EndTimeIndex+1 {
			last.EndTimeIndex = slot.TimeIndex
			continue
		}
		ranges = append(ranges, entity.TimeRange{
			DayIndex:       slot.DayIndex,
			StartTimeIndex: slot.TimeIndex,
			EndTimeIndex:   slot.TimeIndex,
			AttendeeCount:  attendeeCount,
		})
	}

	return ranges
}

func (a *TimeAggregator) validateAvailability(participants []entity.Participant) *errors.AppError {
	for _, p := range participants {
		for _, slot := range p.Availability {
			if slot.DayIndex < 0 {
				return errors.NewValidationError("availability.day_index", "must be non-negative")
			}
			if slot.TimeIndex < 0 {
				return errors.NewValidationError("availability.time_index", "must be non-negative")
			}
		}
	}
	return nil
}
