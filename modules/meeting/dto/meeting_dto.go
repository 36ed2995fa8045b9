package dto

import (
	"time"

	"meetpoint/modules/meeting/entity"
)

// ===================== Request DTOs =====================

// GeoPointDTO carries an optional starting location.
type GeoPointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateMeetingRequest for creating a new meeting
type CreateMeetingRequest struct {
	Title             string       `json:"title" validate:"required"`
	OrganizerName     string       `json:"organizer_name" validate:"required"`
	AvailableDays     []string     `json:"available_days" validate:"required,min=1"` // YYYY-MM-DD
	StartTime         string       `json:"start_time" validate:"required"`           // HH:MM
	EndTime           string       `json:"end_time" validate:"required"`             // HH:MM
	OrganizerLocation *GeoPointDTO `json:"organizer_location,omitempty"`
}

// UpdateMeetingRequest for updating meeting details
type UpdateMeetingRequest struct {
	Title             string       `json:"title"`
	AvailableDays     []string     `json:"available_days"`
	StartTime         string       `json:"start_time"`
	EndTime           string       `json:"end_time"`
	OrganizerLocation *GeoPointDTO `json:"organizer_location,omitempty"`
}

// ===================== Response DTOs =====================

// MeetingResponse for meeting details
type MeetingResponse struct {
	ID                string       `json:"id"`
	Code              string       `json:"code"`
	Title             string       `json:"title"`
	OrganizerName     string       `json:"organizer_name"`
	AvailableDays     []string     `json:"available_days"`
	StartTime         string       `json:"start_time"`
	EndTime           string       `json:"end_time"`
	SlotsPerDay       int          `json:"slots_per_day"`
	OrganizerLocation *GeoPointDTO `json:"organizer_location,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToMeetingResponse maps entity to DTO
func ToMeetingResponse(m *entity.Meeting) *MeetingResponse {
	resp := &MeetingResponse{
		ID:            m.ID.String(),
		Code:          m.Code,
		Title:         m.Title,
		OrganizerName: m.OrganizerName,
		AvailableDays: m.AvailableDays,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		SlotsPerDay:   m.SlotsPerDay(),
		CreatedAt:     m.CreatedAt,
	}

	if m.OrganizerLat != nil && m.OrganizerLng != nil {
		resp.OrganizerLocation = &GeoPointDTO{
			Latitude:  *m.OrganizerLat,
			Longitude: *m.OrganizerLng,
		}
	}

	return resp
}
