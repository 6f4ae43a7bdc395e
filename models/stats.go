package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionPlatformStats = "platform_stats"
	CollectionUserAnalytics = "user_analytics"
)

// PlatformStats is a rolling per-day counter document, updated with $inc upserts.
type PlatformStats struct {
	Id                *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date              string              `bson:"date" json:"date"`
	TotalRequests     int64               `bson:"total_requests" json:"total_requests"`
	CompletedRequests int64               `bson:"completed_requests" json:"completed_requests"`
	FailedRequests    int64               `bson:"failed_requests" json:"failed_requests"`
	TotalGasUsed      int64               `bson:"total_gas_used" json:"total_gas_used"`
	UpdatedAt         time.Time           `bson:"updated_at" json:"updated_at"`
}

type UserAnalytics struct {
	Id                *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	WalletAddress     string              `bson:"wallet_address" json:"wallet_address"`
	RequestsCreated   int64               `bson:"requests_created" json:"requests_created"`
	RequestsCompleted int64               `bson:"requests_completed" json:"requests_completed"`
	RequestsFailed    int64               `bson:"requests_failed" json:"requests_failed"`
	LastActiveAt      time.Time           `bson:"last_active_at" json:"last_active_at"`
}
