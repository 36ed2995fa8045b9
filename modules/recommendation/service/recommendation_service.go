package service

import (
	"context"
	"encoding/json"
	"time"

	"meetpoint/core/cache"
	"meetpoint/core/errors"
	"meetpoint/core/logger"
	"meetpoint/core/tasks"
	meetingRepo "meetpoint/modules/meeting/repository"
	participantRepo "meetpoint/modules/participant/repository"
	"meetpoint/modules/recommendation/dto"
	"meetpoint/modules/recommendation/entity"
	"meetpoint/modules/recommendation/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// RecommendationService orchestrates the two engine components: it fetches a
// consistent snapshot, runs the aggregation, and persists the result. The
// engine itself stays pure; all I/O lives here.
type RecommendationService struct {
	repo            repository.RecommendationRepositoryInterface
	meetingRepo     meetingRepo.MeetingRepositoryInterface
	participantRepo participantRepo.ParticipantRepositoryInterface
	cache           cache.Cache
	catalog         []entity.CandidateLocation
	aggregator      *TimeAggregator
	ranker          *LocationRanker
}

// RecommendationServiceInterface defines the service contract
type RecommendationServiceInterface interface {
	GetRecommendation(ctx context.Context, meetingID uuid.UUID) (*dto.RecommendationResponse, *errors.AppError)
	Refresh(ctx context.Context, meetingID uuid.UUID) (*dto.RecommendationResponse, *errors.AppError)
	HandleRefreshTask(ctx context.Context, t *asynq.Task) error
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	repo repository.RecommendationRepositoryInterface,
	meetings meetingRepo.MeetingRepositoryInterface,
	participants participantRepo.ParticipantRepositoryInterface,
	cache cache.Cache,
	catalog []entity.CandidateLocation,
) *RecommendationService {
	return &RecommendationService{
		repo:            repo,
		meetingRepo:     meetings,
		participantRepo: participants,
		cache:           cache,
		catalog:         catalog,
		aggregator:      NewTimeAggregator(),
		ranker:          NewLocationRanker(),
	}
}

// GetRecommendation serves the latest snapshot: cache first, then the
// database, computing fresh only when neither has one.
func (s *RecommendationService) GetRecommendation(ctx context.Context, meetingID uuid.UUID) (*dto.RecommendationResponse, *errors.AppError) {
	if payload, err := s.cache.GetRecommendation(ctx, meetingID.String()); err == nil {
		var resp dto.RecommendationResponse
		decodeErr := json.Unmarshal(payload, &resp)
		if decodeErr == nil {
			return &resp, nil
		}
		logger.Warn("RecommendationService:GetRecommendation:CacheDecode", "meeting_id", meetingID.String(), "error", decodeErr)
	} else if err != cache.ErrCacheMiss {
		logger.Warn("RecommendationService:GetRecommendation:CacheGet", "meeting_id", meetingID.String(), "error", err)
	}

	stored, err := s.repo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get recommendation", err)
	}
	if stored != nil {
		resp := dto.ToRecommendationResponse(stored)
		s.writeCache(ctx, meetingID, resp)
		return resp, nil
	}

	return s.Refresh(ctx, meetingID)
}

// Refresh recomputes both recommendations from the current participant
// snapshot, persists the result, and writes it through to the cache.
func (s *RecommendationService) Refresh(ctx context.Context, meetingID uuid.UUID) (*dto.RecommendationResponse, *errors.AppError) {
	meeting, err := s.meetingRepo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	participants, err := s.participantRepo.GetParticipantsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get participants", err)
	}

	// Build the engine's view of the snapshot.
	engineParticipants := make([]entity.Participant, 0, len(participants))
	points := make([]entity.GeoPoint, 0, len(participants)+1)
	for i := range participants {
		p := &participants[i]
		engineParticipants = append(engineParticipants, entity.Participant{
			Name:         p.Name,
			Availability: p.Availability,
			Location:     p.Location(),
		})
		if loc := p.Location(); loc != nil {
			points = append(points, *loc)
		}
	}
	// The organizer's location joins the ranking input as one more point.
	if loc := meeting.OrganizerLocation(); loc != nil {
		points = append(points, *loc)
	}

	timeRec, appErr := s.aggregator.ComputeTimeRecommendation(engineParticipants, len(engineParticipants))
	if appErr != nil {
		return nil, appErr
	}

	ranking, appErr := s.ranker.RankLocations(points, s.catalog)
	if appErr != nil {
		return nil, appErr
	}

	snapshot := &entity.MeetingRecommendation{
		MeetingID:       meetingID,
		LocationRanking: entity.RankedLocationList(ranking),
		ComputedAt:      time.Now().UTC(),
	}
	if timeRec != nil {
		snapshot.TimeRecommendation = entity.TimeRecommendationJSON{
			TimeRecommendation: *timeRec,
			Present:            true,
		}
	}

	if err := s.repo.UpsertRecommendation(ctx, snapshot); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store recommendation", err)
	}

	resp := dto.ToRecommendationResponse(snapshot)
	s.writeCache(ctx, meetingID, resp)

	logger.Info("recommendations refreshed",
		"meeting_id", meetingID.String(),
		"participants", len(engineParticipants),
		"points", len(points),
		"ranked_locations", len(ranking),
	)

	return resp, nil
}

// HandleRefreshTask is the asynq handler for recommendation:refresh tasks.
func (s *RecommendationService) HandleRefreshTask(ctx context.Context, t *asynq.Task) error {
	meetingID, err := tasks.ParseRecommendationRefresh(t)
	if err != nil {
		return err
	}

	if _, appErr := s.Refresh(ctx, meetingID); appErr != nil {
		// A deleted meeting leaves nothing to refresh; don't retry.
		if appErr.Code == errors.ErrNotFound {
			logger.Warn("refresh skipped, meeting gone", "meeting_id", meetingID.String())
			return nil
		}
		return appErr
	}
	return nil
}

func (s *RecommendationService) writeCache(ctx context.Context, meetingID uuid.UUID, resp *dto.RecommendationResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		logger.Warn("RecommendationService:writeCache:Marshal", "meeting_id", meetingID.String(), "error", err)
		return
	}
	if err := s.cache.SetRecommendation(ctx, meetingID.String(), payload); err != nil {
		logger.Warn("RecommendationService:writeCache:Set", "meeting_id", meetingID.String(), "error", err)
	}
}
