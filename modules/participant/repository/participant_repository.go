package repository

import (
	"context"

	"meetpoint/core/database"
	"meetpoint/core/logger"
	"meetpoint/modules/participant/entity"

	"github.com/google/uuid"
)

// ParticipantRepository handles participant database operations
type ParticipantRepository struct {
	DB database.IDatabase
}

// NewParticipantRepository creates a new repository instance
func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// ParticipantRepositoryInterface defines the repository contract
type ParticipantRepositoryInterface interface {
	UpsertParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.Participant, error)
	RemoveParticipant(ctx context.Context, meetingID uuid.UUID, participantID uuid.UUID) error
}

// UpsertParticipant inserts a response, replacing any earlier response the
// same name submitted for the same meeting.
func (r *ParticipantRepository) UpsertParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (meeting_id, name, availability, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (meeting_id, name) DO UPDATE
		SET availability = $3, latitude = $4, longitude = $5
		RETURNING id, meeting_id, name, availability, latitude, longitude, created_at
	`

	var stored entity.Participant
	err := r.DB.GetContext(ctx, &stored, query,
		participant.MeetingID, participant.Name, participant.Availability,
		participant.Latitude, participant.Longitude)

	if err != nil {
		logger.Error("ParticipantRepository:UpsertParticipant", err)
		return nil, err
	}

	return &stored, nil
}

func (r *ParticipantRepository) GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT id, meeting_id, name, availability, latitude, longitude, created_at
		FROM participants
		WHERE meeting_id = $1
		ORDER BY created_at
	`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query, meetingID)
	if err != nil {
		logger.Error("ParticipantRepository:GetParticipantsByMeetingID", err)
		return nil, err
	}

	return participants, nil
}

func (r *ParticipantRepository) RemoveParticipant(ctx context.Context, meetingID uuid.UUID, participantID uuid.UUID) error {
	query := `DELETE FROM participants WHERE meeting_id = $1 AND id = $2`
	err := r.DB.ExecContext(ctx, query, meetingID, participantID)
	if err != nil {
		logger.Error("ParticipantRepository:RemoveParticipant", err)
		return err
	}
	return nil
}
