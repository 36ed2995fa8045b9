package constants

import "time"

// Slot granularity within a meeting's daily window.
const (
	SlotDurationMinutes = 30
)

// Redis keys
const (
	RedisKeyRecommendation = "meetpoint:recommendation:"

	RecommendationCacheTTL = 15 * time.Minute
)

// Asynq task types and queues
const (
	TaskRecommendationRefresh = "recommendation:refresh"
	QueueRecommendations      = "recommendations"
)

// Database pool tuning
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Location ranking
const (
	DefaultLocationTopK = 5
)
