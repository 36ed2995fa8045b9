package entity

// TimeSlot addresses one 30-minute interval within a meeting's daily window.
// DayIndex indexes the meeting's ordered day list; TimeIndex counts intervals
// from the window's start time. Slots order by (DayIndex, TimeIndex).
type TimeSlot struct {
	DayIndex  int `json:"day_index"`
	TimeIndex int `json:"time_index"`
}

// GeoPoint is a WGS 84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InBounds reports whether the point lies within valid latitude/longitude
// ranges. Out-of-range points are rejected, never clamped.
func (g GeoPoint) InBounds() bool {
	return g.Latitude >= -90 && g.Latitude <= 90 &&
		g.Longitude >= -180 && g.Longitude <= 180
}

// Participant is the engine-side view of one submission: a name, the set of
// slots the person is free, and optionally where they start travelling from.
type Participant struct {
	Name         string     `json:"name"`
	Availability []TimeSlot `json:"availability"`
	Location     *GeoPoint  `json:"location,omitempty"`
}

// CandidateLocation is one entry of the static meeting-spot catalog.
type CandidateLocation struct {
	ID           string   `json:"id" mapstructure:"id"`
	Name         string   `json:"name" mapstructure:"name"`
	Abbreviation string   `json:"abbreviation" mapstructure:"abbreviation"`
	Coordinates  GeoPoint `json:"coordinates" mapstructure:"coordinates"`
}

// RecommendationKind tags a time recommendation: either every participant is
// free in the returned ranges, or they are the best-effort maximum overlap.
type RecommendationKind string

const (
	KindUniversal  RecommendationKind = "universal"
	KindBestEffort RecommendationKind = "best_effort"
)

// TimeRange is a maximal run of contiguous slots on one day sharing the same
// attendee count. EndTimeIndex is inclusive.
type TimeRange struct {
	DayIndex       int `json:"day_index"`
	StartTimeIndex int `json:"start_time_index"`
	EndTimeIndex   int `json:"end_time_index"`
	AttendeeCount  int `json:"attendee_count"`
}

// TimeRecommendation is the aggregated result over all submissions. Absence
// of any recommendation is a nil *TimeRecommendation, never an error.
type TimeRecommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Ranges  []TimeRange        `json:"ranges"`
	Summary string             `json:"summary"`
}

// Universal reports whether every participant is free in all ranges.
func (t *TimeRecommendation) Universal() bool {
	return t != nil && t.Kind == KindUniversal
}

// RankedLocation scores one catalog candidate against all supplied points.
// FairnessScore = MaxDistanceMeters - MeanDistanceMeters; it is exposed for
// display and tie-breaking only and is never the primary sort key.
type RankedLocation struct {
	Candidate          CandidateLocation `json:"candidate"`
	MeanDistanceMeters float64           `json:"mean_distance_meters"`
	MaxDistanceMeters  float64           `json:"max_distance_meters"`
	FairnessScore      float64           `json:"fairness_score"`
}
