package store

import (
	"strings"
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

const statsDateLayout = "2006-01-02"

func statsDate() string {
	return time.Now().UTC().Format(statsDateLayout)
}

func incrementPlatformStats(inc bson.M) error {
	filter := bson.M{"date": statsDate()}
	update := bson.M{
		"$setOnInsert": bson.M{"date": statsDate()},
		"$set":         bson.M{"updated_at": time.Now()},
		"$inc":         inc,
	}
	return app.DB.UpsertOne(models.CollectionPlatformStats, filter, update)
}

func incrementUserAnalytics(walletAddress string, inc bson.M) error {
	wallet := strings.ToLower(walletAddress)
	filter := bson.M{"wallet_address": wallet}
	update := bson.M{
		"$setOnInsert": bson.M{"wallet_address": wallet},
		"$set":         bson.M{"last_active_at": time.Now()},
		"$inc":         inc,
	}
	return app.DB.UpsertOne(models.CollectionUserAnalytics, filter, update)
}

// RecordRequestCreated bumps the per-day and per-wallet counters for a newly
// observed mint request.
func RecordRequestCreated(walletAddress string) error {
	if err := incrementPlatformStats(bson.M{"total_requests": 1}); err != nil {
		return err
	}
	return incrementUserAnalytics(walletAddress, bson.M{"requests_created": 1})
}

// RecordRequestCompleted bumps completion counters and accumulates gas spent
// on the completion transaction.
func RecordRequestCompleted(walletAddress string, gasUsed int64) error {
	if err := incrementPlatformStats(bson.M{"completed_requests": 1, "total_gas_used": gasUsed}); err != nil {
		return err
	}
	return incrementUserAnalytics(walletAddress, bson.M{"requests_completed": 1})
}

// RecordGasUsed accumulates gas spent on completion transactions into the
// per-day stats document.
func RecordGasUsed(gasUsed int64) error {
	return incrementPlatformStats(bson.M{"total_gas_used": gasUsed})
}

func RecordRequestFailed(walletAddress string) error {
	if err := incrementPlatformStats(bson.M{"failed_requests": 1}); err != nil {
		return err
	}
	return incrementUserAnalytics(walletAddress, bson.M{"requests_failed": 1})
}
