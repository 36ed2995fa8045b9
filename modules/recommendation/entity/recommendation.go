package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// TimeRecommendationJSON stores a TimeRecommendation as a JSONB column.
// A SQL NULL round-trips to the zero value with Present == false, which is
// how "no participant has submitted any availability yet" is persisted.
type TimeRecommendationJSON struct {
	TimeRecommendation
	Present bool `json:"-"`
}

func (t TimeRecommendationJSON) Value() (driver.Value, error) {
	if !t.Present {
		return nil, nil
	}
	return json.Marshal(t.TimeRecommendation)
}

func (t *TimeRecommendationJSON) Scan(value interface{}) error {
	if value == nil {
		*t = TimeRecommendationJSON{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &t.TimeRecommendation); err != nil {
		return err
	}
	t.Present = true
	return nil
}

// RankedLocationList stores a location ranking as a JSONB column.
type RankedLocationList []RankedLocation

func (l RankedLocationList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]RankedLocation{})
	}
	return json.Marshal([]RankedLocation(l))
}

func (l *RankedLocationList) Scan(value interface{}) error {
	if value == nil {
		*l = RankedLocationList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, (*[]RankedLocation)(l))
}

// MeetingRecommendation is the persisted snapshot of the latest engine run
// for one meeting.
type MeetingRecommendation struct {
	MeetingID          uuid.UUID              `db:"meeting_id" json:"meeting_id"`
	TimeRecommendation TimeRecommendationJSON `db:"time_recommendation" json:"time_recommendation"`
	LocationRanking    RankedLocationList     `db:"location_ranking" json:"location_ranking"`
	ComputedAt         time.Time              `db:"computed_at" json:"computed_at"`
}
