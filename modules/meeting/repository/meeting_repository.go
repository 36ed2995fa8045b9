package repository

import (
	"context"
	"database/sql"

	"meetpoint/core/database"
	"meetpoint/core/logger"
	"meetpoint/modules/meeting/entity"

	"github.com/google/uuid"
)

// MeetingRepository handles meeting database operations
type MeetingRepository struct {
	DB database.IDatabase
}

// NewMeetingRepository creates a new repository instance
func NewMeetingRepository(db database.IDatabase) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

// MeetingRepositoryInterface defines the repository contract
type MeetingRepositoryInterface interface {
	CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	GetMeetingByCode(ctx context.Context, code string) (*entity.Meeting, error)
	ListRecentMeetings(ctx context.Context, limit int) ([]entity.Meeting, error)
	UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
}

func (r *MeetingRepository) CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (code, title, organizer_name, available_days, start_time, end_time, organizer_lat, organizer_lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, code, title, organizer_name, available_days, start_time, end_time,
		          organizer_lat, organizer_lng, created_at, updated_at
	`

	var created entity.Meeting
	err := r.DB.GetContext(ctx, &created, query,
		meeting.Code, meeting.Title, meeting.OrganizerName, meeting.AvailableDays,
		meeting.StartTime, meeting.EndTime, meeting.OrganizerLat, meeting.OrganizerLng)

	if err != nil {
		logger.Error("MeetingRepository:CreateMeeting", err)
		return nil, err
	}

	return &created, nil
}

func (r *MeetingRepository) GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	query := `
		SELECT id, code, title, organizer_name, available_days, start_time, end_time,
		       organizer_lat, organizer_lng, created_at, updated_at
		FROM meetings WHERE id = $1
	`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetMeetingByID", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) GetMeetingByCode(ctx context.Context, code string) (*entity.Meeting, error) {
	query := `
		SELECT id, code, title, organizer_name, available_days, start_time, end_time,
		       organizer_lat, organizer_lng, created_at, updated_at
		FROM meetings WHERE code = $1
	`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MeetingRepository:GetMeetingByCode", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) ListRecentMeetings(ctx context.Context, limit int) ([]entity.Meeting, error) {
	query := `
		SELECT id, code, title, organizer_name, available_days, start_time, end_time,
		       organizer_lat, organizer_lng, created_at, updated_at
		FROM meetings
		ORDER BY created_at DESC
		LIMIT $1
	`

	var meetings []entity.Meeting
	err := r.DB.SelectContext(ctx, &meetings, query, limit)
	if err != nil {
		logger.Error("MeetingRepository:ListRecentMeetings", err)
		return nil, err
	}

	return meetings, nil
}

func (r *MeetingRepository) UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $2, available_days = $3, start_time = $4, end_time = $5,
		    organizer_lat = $6, organizer_lng = $7, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		meeting.ID, meeting.Title, meeting.AvailableDays, meeting.StartTime,
		meeting.EndTime, meeting.OrganizerLat, meeting.OrganizerLng)

	if err != nil {
		logger.Error("MeetingRepository:UpdateMeeting", err)
		return err
	}

	return nil
}

func (r *MeetingRepository) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	// Participants and stored recommendations cascade via FK constraints.
	query := `DELETE FROM meetings WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("MeetingRepository:DeleteMeeting", err)
		return err
	}
	return nil
}
