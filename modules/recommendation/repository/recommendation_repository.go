package repository

import (
	"context"
	"database/sql"

	"meetpoint/core/database"
	"meetpoint/core/logger"
	"meetpoint/modules/recommendation/entity"

	"github.com/google/uuid"
)

// RecommendationRepository persists engine output snapshots
type RecommendationRepository struct {
	DB database.IDatabase
}

// NewRecommendationRepository creates a new repository instance
func NewRecommendationRepository(db database.IDatabase) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// RecommendationRepositoryInterface defines the repository contract
type RecommendationRepositoryInterface interface {
	UpsertRecommendation(ctx context.Context, rec *entity.MeetingRecommendation) error
	GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entity.MeetingRecommendation, error)
	DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error
}

func (r *RecommendationRepository) UpsertRecommendation(ctx context.Context, rec *entity.MeetingRecommendation) error {
	query := `
		INSERT INTO meeting_recommendations (meeting_id, time_recommendation, location_ranking, computed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (meeting_id) DO UPDATE
		SET time_recommendation = $2, location_ranking = $3, computed_at = $4
	`

	err := r.DB.ExecContext(ctx, query,
		rec.MeetingID, rec.TimeRecommendation, rec.LocationRanking, rec.ComputedAt)
	if err != nil {
		logger.Error("RecommendationRepository:UpsertRecommendation", err)
		return err
	}

	return nil
}

func (r *RecommendationRepository) GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entity.MeetingRecommendation, error) {
	query := `
		SELECT meeting_id, time_recommendation, location_ranking, computed_at
		FROM meeting_recommendations
		WHERE meeting_id = $1
	`

	var rec entity.MeetingRecommendation
	err := r.DB.GetContext(ctx, &rec, query, meetingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RecommendationRepository:GetByMeetingID", err)
		return nil, err
	}

	return &rec, nil
}

func (r *RecommendationRepository) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	query := `DELETE FROM meeting_recommendations WHERE meeting_id = $1`
	err := r.DB.ExecContext(ctx, query, meetingID)
	if err != nil {
		logger.Error("RecommendationRepository:DeleteByMeetingID", err)
		return err
	}
	return nil
}
