package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"meetpoint/core/config"
	"meetpoint/core/constants"
	"meetpoint/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// RecommendationRefreshPayload is the payload of a recommendation:refresh task.
type RecommendationRefreshPayload struct {
	MeetingID string `json:"meeting_id"`
}

// Enqueuer schedules background recommendation refreshes. Services depend on
// this interface so tests can swap in a recording fake.
type Enqueuer interface {
	EnqueueRecommendationRefresh(ctx context.Context, meetingID uuid.UUID) error
}

// Client wraps an asynq client for task enqueueing.
type Client struct {
	client *asynq.Client
}

// NewClient creates an asynq client against the configured Redis instance.
func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueRecommendationRefresh schedules a recompute of the recommendations
// for one meeting. Duplicate pending refreshes for the same meeting collapse
// via the task's unique ID.
func (c *Client) EnqueueRecommendationRefresh(ctx context.Context, meetingID uuid.UUID) error {
	payload, err := json.Marshal(RecommendationRefreshPayload{MeetingID: meetingID.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh payload: %w", err)
	}

	task := asynq.NewTask(constants.TaskRecommendationRefresh, payload)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueRecommendations),
		asynq.TaskID("refresh:"+meetingID.String()),
		asynq.MaxRetry(3),
	)
	if err != nil {
		// A pending refresh for this meeting already covers the new submission.
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			logger.Debug("refresh already pending", "meeting_id", meetingID.String())
			return nil
		}
		return fmt.Errorf("failed to enqueue recommendation refresh: %w", err)
	}

	logger.Debug("enqueued recommendation refresh", "meeting_id", meetingID.String(), "task_id", info.ID)
	return nil
}

// ParseRecommendationRefresh decodes a recommendation:refresh task payload.
func ParseRecommendationRefresh(t *asynq.Task) (uuid.UUID, error) {
	var payload RecommendationRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal refresh payload: %w", err)
	}
	id, err := uuid.Parse(payload.MeetingID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid meeting id in refresh payload: %w", err)
	}
	return id, nil
}

// NewServer creates the asynq worker server for the recommendations queue.
func NewServer(redisCfg config.RedisConfig, workerCfg config.WorkerConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		},
		asynq.Config{
			Concurrency: workerCfg.Concurrency,
			Queues: map[string]int{
				constants.QueueRecommendations: 1,
			},
		},
	)
}
