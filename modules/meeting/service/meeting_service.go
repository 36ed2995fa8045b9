package service

import (
	"context"
	"time"

	"meetpoint/core/cache"
	"meetpoint/core/errors"
	"meetpoint/core/logger"
	"meetpoint/core/utils"
	"meetpoint/modules/meeting/dto"
	"meetpoint/modules/meeting/entity"
	"meetpoint/modules/meeting/repository"

	"github.com/google/uuid"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	repo  repository.MeetingRepositoryInterface
	cache cache.Cache
}

// MeetingServiceInterface defines the service contract
type MeetingServiceInterface interface {
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	GetMeetingByCode(ctx context.Context, code string) (*dto.MeetingResponse, *errors.AppError)
	ListRecentMeetings(ctx context.Context, limit int) ([]dto.MeetingResponse, *errors.AppError)
	UpdateMeeting(ctx context.Context, id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	DeleteMeeting(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewMeetingService creates a new meeting service
func NewMeetingService(repo repository.MeetingRepositoryInterface, c cache.Cache) MeetingServiceInterface {
	return &MeetingService{repo: repo, cache: c}
}

// CreateMeeting validates and stores a new meeting definition
func (s *MeetingService) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewValidationError("title", "must not be empty")
	}
	if req.OrganizerName == "" {
		return nil, errors.NewValidationError("organizer_name", "must not be empty")
	}
	if appErr := validateDays(req.AvailableDays); appErr != nil {
		return nil, appErr
	}
	if appErr := validateWindow(req.StartTime, req.EndTime); appErr != nil {
		return nil, appErr
	}
	if appErr := validateOrganizerLocation(req.OrganizerLocation); appErr != nil {
		return nil, appErr
	}

	meeting := &entity.Meeting{
		Code:          utils.GenerateMeetingCode(),
		Title:         req.Title,
		OrganizerName: req.OrganizerName,
		AvailableDays: entity.DayList(req.AvailableDays),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}
	if req.OrganizerLocation != nil {
		meeting.OrganizerLat = &req.OrganizerLocation.Latitude
		meeting.OrganizerLng = &req.OrganizerLocation.Longitude
	}

	created, err := s.repo.CreateMeeting(ctx, meeting)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create meeting", err)
	}

	return dto.ToMeetingResponse(created), nil
}

// GetMeetingByID retrieves a meeting by ID
func (s *MeetingService) GetMeetingByID(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	return dto.ToMeetingResponse(meeting), nil
}

// GetMeetingByCode retrieves a meeting by its public code
func (s *MeetingService) GetMeetingByCode(ctx context.Context, code string) (*dto.MeetingResponse, *errors.AppError) {
	if code == "" {
		return nil, errors.NewValidationError("code", "must not be empty")
	}

	meeting, err := s.repo.GetMeetingByCode(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}
	return dto.ToMeetingResponse(meeting), nil
}

// ListRecentMeetings retrieves the most recently created meetings
func (s *MeetingService) ListRecentMeetings(ctx context.Context, limit int) ([]dto.MeetingResponse, *errors.AppError) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	meetings, err := s.repo.ListRecentMeetings(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list meetings", err)
	}

	result := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		result = append(result, *dto.ToMeetingResponse(&meetings[i]))
	}
	return result, nil
}

// UpdateMeeting updates meeting details
func (s *MeetingService) UpdateMeeting(ctx context.Context, id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, id)
	if err != nil || meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", err)
	}

	if req.Title != "" {
		meeting.Title = req.Title
	}
	if len(req.AvailableDays) > 0 {
		if appErr := validateDays(req.AvailableDays); appErr != nil {
			return nil, appErr
		}
		meeting.AvailableDays = entity.DayList(req.AvailableDays)
	}
	if req.StartTime != "" || req.EndTime != "" {
		startTime := meeting.StartTime
		endTime := meeting.EndTime
		if req.StartTime != "" {
			startTime = req.StartTime
		}
		if req.EndTime != "" {
			endTime = req.EndTime
		}
		if appErr := validateWindow(startTime, endTime); appErr != nil {
			return nil, appErr
		}
		meeting.StartTime = startTime
		meeting.EndTime = endTime
	}
	if req.OrganizerLocation != nil {
		if appErr := validateOrganizerLocation(req.OrganizerLocation); appErr != nil {
			return nil, appErr
		}
		meeting.OrganizerLat = &req.OrganizerLocation.Latitude
		meeting.OrganizerLng = &req.OrganizerLocation.Longitude
	}

	if err := s.repo.UpdateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update meeting", err)
	}

	return s.GetMeetingByID(ctx, id)
}

// DeleteMeeting deletes a meeting and everything derived from it
func (s *MeetingService) DeleteMeeting(ctx context.Context, id uuid.UUID) *errors.AppError {
	meeting, err := s.repo.GetMeetingByID(ctx, id)
	if err != nil || meeting == nil {
		return errors.NewAppError(errors.ErrNotFound, "Meeting not found", err)
	}

	if err := s.repo.DeleteMeeting(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete meeting", err)
	}

	// Postgres cascades the rows; the cached recommendation snapshot must be
	// evicted too or reads keep serving the deleted meeting until the TTL.
	if err := s.cache.DeleteRecommendation(ctx, id.String()); err != nil {
		logger.Warn("MeetingService:DeleteMeeting:CacheEvict", "meeting_id", id.String(), "error", err)
	}

	return nil
}

func validateDays(days []string) *errors.AppError {
	if len(days) == 0 {
		return errors.NewValidationError("available_days", "must contain at least one day")
	}
	for _, day := range days {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return errors.NewValidationError("available_days", "days must be formatted as YYYY-MM-DD")
		}
	}
	return nil
}

func validateWindow(startTime, endTime string) *errors.AppError {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return errors.NewValidationError("start_time", "must be formatted as HH:MM")
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return errors.NewValidationError("end_time", "must be formatted as HH:MM")
	}
	if !end.After(start) {
		return errors.NewValidationError("end_time", "must be after start_time")
	}
	return nil
}

func validateOrganizerLocation(loc *dto.GeoPointDTO) *errors.AppError {
	if loc == nil {
		return nil
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return errors.NewValidationError("organizer_location.latitude", "must be within [-90, 90]")
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return errors.NewValidationError("organizer_location.longitude", "must be within [-180, 180]")
	}
	return nil
}
