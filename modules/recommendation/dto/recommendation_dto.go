package dto

import (
	"time"

	"meetpoint/modules/recommendation/entity"
)

// ===================== Response DTOs =====================

// TimeRangeDTO is one recommended contiguous run of slots
type TimeRangeDTO struct {
	DayIndex       int `json:"day_index"`
	StartTimeIndex int `json:"start_time_index"`
	EndTimeIndex   int `json:"end_time_index"`
	AttendeeCount  int `json:"attendee_count"`
}

// TimeRecommendationDTO is the aggregated time result. Available is false
// when no participant has submitted any availability yet.
type TimeRecommendationDTO struct {
	Available bool           `json:"available"`
	Universal bool           `json:"universal,omitempty"`
	Summary   string         `json:"summary,omitempty"`
	Ranges    []TimeRangeDTO `json:"ranges,omitempty"`
}

// RankedLocationDTO is one catalog candidate with its travel metrics
type RankedLocationDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Abbreviation       string  `json:"abbreviation,omitempty"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	MeanDistanceMeters float64 `json:"mean_distance_meters"`
	MaxDistanceMeters  float64 `json:"max_distance_meters"`
	FairnessScore      float64 `json:"fairness_score"`
}

// RecommendationResponse bundles both engine results for a meeting
type RecommendationResponse struct {
	MeetingID  string                `json:"meeting_id"`
	Time       TimeRecommendationDTO `json:"time"`
	Locations  []RankedLocationDTO   `json:"locations"`
	ComputedAt time.Time             `json:"computed_at"`
}

// ===================== Mapper Functions =====================

// ToTimeRecommendationDTO maps the engine result; nil means no availability
// has been submitted yet, which serializes as {"available": false}.
func ToTimeRecommendationDTO(rec *entity.TimeRecommendation) TimeRecommendationDTO {
	if rec == nil {
		return TimeRecommendationDTO{Available: false}
	}

	ranges := make([]TimeRangeDTO, 0, len(rec.Ranges))
	for _, r := range rec.Ranges {
		ranges = append(ranges, TimeRangeDTO{
			DayIndex:       r.DayIndex,
			StartTimeIndex: r.StartTimeIndex,
			EndTimeIndex:   r.EndTimeIndex,
			AttendeeCount:  r.AttendeeCount,
		})
	}

	return TimeRecommendationDTO{
		Available: true,
		Universal: rec.Universal(),
		Summary:   rec.Summary,
		Ranges:    ranges,
	}
}

// ToRankedLocationDTOs maps the ranked catalog candidates
func ToRankedLocationDTOs(ranked []entity.RankedLocation) []RankedLocationDTO {
	result := make([]RankedLocationDTO, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, RankedLocationDTO{
			ID:                 r.Candidate.ID,
			Name:               r.Candidate.Name,
			Abbreviation:       r.Candidate.Abbreviation,
			Latitude:           r.Candidate.Coordinates.Latitude,
			Longitude:          r.Candidate.Coordinates.Longitude,
			MeanDistanceMeters: r.MeanDistanceMeters,
			MaxDistanceMeters:  r.MaxDistanceMeters,
			FairnessScore:      r.FairnessScore,
		})
	}
	return result
}

// ToRecommendationResponse maps a persisted snapshot
func ToRecommendationResponse(rec *entity.MeetingRecommendation) *RecommendationResponse {
	var timeRec *entity.TimeRecommendation
	if rec.TimeRecommendation.Present {
		timeRec = &rec.TimeRecommendation.TimeRecommendation
	}

	return &RecommendationResponse{
		MeetingID:  rec.MeetingID.String(),
		Time:       ToTimeRecommendationDTO(timeRec),
		Locations:  ToRankedLocationDTOs(rec.LocationRanking),
		ComputedAt: rec.ComputedAt,
	}
}
