package dto

import (
	"time"

	"meetpoint/modules/participant/entity"
	recoEntity "meetpoint/modules/recommendation/entity"
)

// ===================== Request DTOs =====================

// TimeSlotDTO addresses one 30-minute slot
type TimeSlotDTO struct {
	DayIndex  int `json:"day_index"`
	TimeIndex int `json:"time_index"`
}

// GeoPointDTO carries an optional starting location
type GeoPointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubmitParticipantRequest for submitting (or replacing) a response
type SubmitParticipantRequest struct {
	Name         string        `json:"name" validate:"required"`
	Availability []TimeSlotDTO `json:"availability"`
	Location     *GeoPointDTO  `json:"location,omitempty"`
}

// ===================== Response DTOs =====================

// ParticipantResponse for a stored response
type ParticipantResponse struct {
	ID           string        `json:"id"`
	MeetingID    string        `json:"meeting_id"`
	Name         string        `json:"name"`
	Availability []TimeSlotDTO `json:"availability"`
	Location     *GeoPointDTO  `json:"location,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToAvailabilitySet maps request slots to the entity representation
func ToAvailabilitySet(slots []TimeSlotDTO) entity.AvailabilitySet {
	set := make(entity.AvailabilitySet, 0, len(slots))
	for _, s := range slots {
		set = append(set, recoEntity.TimeSlot{DayIndex: s.DayIndex, TimeIndex: s.TimeIndex})
	}
	return set
}

// ToParticipantResponse maps entity to DTO
func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	resp := &ParticipantResponse{
		ID:           p.ID.String(),
		MeetingID:    p.MeetingID.String(),
		Name:         p.Name,
		Availability: make([]TimeSlotDTO, 0, len(p.Availability)),
		CreatedAt:    p.CreatedAt,
	}

	for _, s := range p.Availability {
		resp.Availability = append(resp.Availability, TimeSlotDTO{DayIndex: s.DayIndex, TimeIndex: s.TimeIndex})
	}

	if p.Latitude != nil && p.Longitude != nil {
		resp.Location = &GeoPointDTO{Latitude: *p.Latitude, Longitude: *p.Longitude}
	}

	return resp
}
