package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"meetpoint/core/constants"
	recoEntity "meetpoint/modules/recommendation/entity"

	"github.com/google/uuid"
)

// DayList is the ordered list of candidate dates ("YYYY-MM-DD"), stored as a
// JSONB array. Slot day indexes point into this list.
type DayList []string

func (d DayList) Value() (driver.Value, error) {
	return json.Marshal([]string(d))
}

func (d *DayList) Scan(value interface{}) error {
	if value == nil {
		*d = DayList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, (*[]string)(d))
}

// Meeting is one coordination session: a set of candidate days, a daily time
// window, and optionally where the organizer starts travelling from.
type Meeting struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Code          string    `db:"code" json:"code"`
	Title         string    `db:"title" json:"title"`
	OrganizerName string    `db:"organizer_name" json:"organizer_name"`
	AvailableDays DayList   `db:"available_days" json:"available_days"`
	StartTime     string    `db:"start_time" json:"start_time"` // "HH:MM"
	EndTime       string    `db:"end_time" json:"end_time"`     // "HH:MM"
	OrganizerLat  *float64  `db:"organizer_lat" json:"organizer_lat,omitempty"`
	OrganizerLng  *float64  `db:"organizer_lng" json:"organizer_lng,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// SlotsPerDay returns how many 30-minute slots fit in the daily window, or 0
// when the stored times are malformed.
func (m *Meeting) SlotsPerDay() int {
	start, err1 := time.Parse("15:04", m.StartTime)
	end, err2 := time.Parse("15:04", m.EndTime)
	if err1 != nil || err2 != nil || !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes()) / constants.SlotDurationMinutes
}

// OrganizerLocation returns the organizer's starting point, if one was given.
// It participates in location ranking as one extra point alongside the
// participants'.
func (m *Meeting) OrganizerLocation() *recoEntity.GeoPoint {
	if m.OrganizerLat == nil || m.OrganizerLng == nil {
		return nil
	}
	return &recoEntity.GeoPoint{Latitude: *m.OrganizerLat, Longitude: *m.OrganizerLng}
}
