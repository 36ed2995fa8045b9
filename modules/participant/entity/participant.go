package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	recoEntity "meetpoint/modules/recommendation/entity"

	"github.com/google/uuid"
)

// AvailabilitySet is one participant's selected slots, stored as JSONB.
type AvailabilitySet []recoEntity.TimeSlot

func (a AvailabilitySet) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]recoEntity.TimeSlot{})
	}
	return json.Marshal([]recoEntity.TimeSlot(a))
}

func (a *AvailabilitySet) Scan(value interface{}) error {
	if value == nil {
		*a = AvailabilitySet{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, (*[]recoEntity.TimeSlot)(a))
}

// Participant is one submitted response to a meeting: the slots the person is
// free plus an optional starting location. Resubmitting under the same name
// replaces the previous response in full.
type Participant struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	MeetingID    uuid.UUID       `db:"meeting_id" json:"meeting_id"`
	Name         string          `db:"name" json:"name"`
	Availability AvailabilitySet `db:"availability" json:"availability"`
	Latitude     *float64        `db:"latitude" json:"latitude,omitempty"`
	Longitude    *float64        `db:"longitude" json:"longitude,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Location returns the participant's starting point, if one was supplied.
func (p *Participant) Location() *recoEntity.GeoPoint {
	if p.Latitude == nil || p.Longitude == nil {
		return nil
	}
	return &recoEntity.GeoPoint{Latitude: *p.Latitude, Longitude: *p.Longitude}
}
