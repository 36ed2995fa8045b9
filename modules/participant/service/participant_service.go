package service

import (
	"context"

	"meetpoint/core/errors"
	"meetpoint/core/logger"
	"meetpoint/core/tasks"
	meetingEntity "meetpoint/modules/meeting/entity"
	meetingRepo "meetpoint/modules/meeting/repository"
	"meetpoint/modules/participant/dto"
	"meetpoint/modules/participant/entity"
	"meetpoint/modules/participant/repository"

	"github.com/google/uuid"
)

// ParticipantService handles submission business logic
type ParticipantService struct {
	repo        repository.ParticipantRepositoryInterface
	meetingRepo meetingRepo.MeetingRepositoryInterface
	enqueuer    tasks.Enqueuer
}

// ParticipantServiceInterface defines the service contract
type ParticipantServiceInterface interface {
	SubmitResponse(ctx context.Context, meetingID uuid.UUID, req *dto.SubmitParticipantRequest) (*dto.ParticipantResponse, *errors.AppError)
	GetParticipants(ctx context.Context, meetingID uuid.UUID) ([]dto.ParticipantResponse, *errors.AppError)
	RemoveParticipant(ctx context.Context, meetingID uuid.UUID, participantID uuid.UUID) *errors.AppError
}

// NewParticipantService creates a new participant service
func NewParticipantService(
	repo repository.ParticipantRepositoryInterface,
	meetingRepo meetingRepo.MeetingRepositoryInterface,
	enqueuer tasks.Enqueuer,
) ParticipantServiceInterface {
	return &ParticipantService{
		repo:        repo,
		meetingRepo: meetingRepo,
		enqueuer:    enqueuer,
	}
}

// SubmitResponse stores a participant's availability and location. A repeat
// submission under the same name replaces the earlier one in full. Every
// accepted submission schedules a recommendation refresh for the meeting.
func (s *ParticipantService) SubmitResponse(ctx context.Context, meetingID uuid.UUID, req *dto.SubmitParticipantRequest) (*dto.ParticipantResponse, *errors.AppError) {
	meeting, err := s.meetingRepo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	if appErr := s.validateSubmission(meeting, req); appErr != nil {
		return nil, appErr
	}

	participant := &entity.Participant{
		MeetingID:    meetingID,
		Name:         req.Name,
		Availability: dto.ToAvailabilitySet(req.Availability),
	}
	if req.Location != nil {
		participant.Latitude = &req.Location.Latitude
		participant.Longitude = &req.Location.Longitude
	}

	stored, err := s.repo.UpsertParticipant(ctx, participant)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save response", err)
	}

	// At-least-once refresh: recommendations are recomputed after every
	// submission so they always reflect the latest snapshot.
	if err := s.enqueuer.EnqueueRecommendationRefresh(ctx, meetingID); err != nil {
		logger.Error("ParticipantService:SubmitResponse:EnqueueRefresh", err)
	}

	return dto.ToParticipantResponse(stored), nil
}

// GetParticipants lists all responses for a meeting
func (s *ParticipantService) GetParticipants(ctx context.Context, meetingID uuid.UUID) ([]dto.ParticipantResponse, *errors.AppError) {
	participants, err := s.repo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get participants", err)
	}

	result := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		result = append(result, *dto.ToParticipantResponse(&participants[i]))
	}
	return result, nil
}

// RemoveParticipant deletes a response and schedules a refresh
func (s *ParticipantService) RemoveParticipant(ctx context.Context, meetingID uuid.UUID, participantID uuid.UUID) *errors.AppError {
	if err := s.repo.RemoveParticipant(ctx, meetingID, participantID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove participant", err)
	}

	if err := s.enqueuer.EnqueueRecommendationRefresh(ctx, meetingID); err != nil {
		logger.Error("ParticipantService:RemoveParticipant:EnqueueRefresh", err)
	}

	return nil
}

// validateSubmission checks names, slot indexes against the meeting's window,
// and coordinate bounds. Out-of-range values are rejected, never normalized.
func (s *ParticipantService) validateSubmission(meeting *meetingEntity.Meeting, req *dto.SubmitParticipantRequest) *errors.AppError {
	if req.Name == "" {
		return errors.NewValidationError("name", "must not be empty")
	}

	dayCount := len(meeting.AvailableDays)
	slotsPerDay := meeting.SlotsPerDay()

	seen := map[dto.TimeSlotDTO]bool{}
	for _, slot := range req.Availability {
		if slot.DayIndex < 0 {
			return errors.NewValidationError("availability.day_index", "must be non-negative")
		}
		if slot.TimeIndex < 0 {
			return errors.NewValidationError("availability.time_index", "must be non-negative")
		}
		if slot.DayIndex >= dayCount {
			return errors.NewValidationError("availability.day_index", "exceeds the meeting's day list")
		}
		if slot.TimeIndex >= slotsPerDay {
			return errors.NewValidationError("availability.time_index", "exceeds the meeting's daily window")
		}
		if seen[slot] {
			return errors.NewValidationError("availability", "must not contain duplicate slots")
		}
		seen[slot] = true
	}

	if req.Location != nil {
		if req.Location.Latitude < -90 || req.Location.Latitude > 90 {
			return errors.NewValidationError("location.latitude", "must be within [-90, 90]")
		}
		if req.Location.Longitude < -180 || req.Location.Longitude > 180 {
			return errors.NewValidationError("location.longitude", "must be within [-180, 180]")
		}
	}

	return nil
}
