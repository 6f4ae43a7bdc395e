package store

import (
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateOrphan stores a terminal event that arrived before its request record.
// The unique (transaction_hash, log_index) index makes replays a duplicate key
// error, which the caller treats as already recorded.
func CreateOrphan(doc models.OrphanEvent) error {
	_, err := app.DB.InsertOne(models.CollectionOrphanEvents, doc)
	return err
}

// FindPendingOrphans returns unresolved orphan events, oldest first.
func FindPendingOrphans(limit int64) ([]models.OrphanEvent, error) {
	var docs []models.OrphanEvent
	filter := bson.M{"status": models.OrphanStatusPending}
	sort := bson.M{"first_seen_at": 1}
	err := app.DB.FindManyPaginated(models.CollectionOrphanEvents, filter, sort, 0, limit, &docs)
	return docs, err
}

// ResolveOrphan marks an orphan event as applied to its request record.
func ResolveOrphan(transactionHash string, logIndex string) (int64, error) {
	filter := bson.M{
		"transaction_hash": transactionHash,
		"log_index":        logIndex,
		"status":           models.OrphanStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.OrphanStatusResolved,
			"updated_at": time.Now(),
		},
	}
	return app.DB.UpdateOne(models.CollectionOrphanEvents, filter, update)
}

// ExpireOrphan gives up on an orphan event that stayed unmatched past the
// sweeper's max age.
func ExpireOrphan(transactionHash string, logIndex string) (int64, error) {
	filter := bson.M{
		"transaction_hash": transactionHash,
		"log_index":        logIndex,
		"status":           models.OrphanStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.OrphanStatusExpired,
			"updated_at": time.Now(),
		},
	}
	return app.DB.UpdateOne(models.CollectionOrphanEvents, filter, update)
}

// TouchOrphan bumps the retry counter after an unsuccessful match attempt.
func TouchOrphan(transactionHash string, logIndex string) (int64, error) {
	filter := bson.M{
		"transaction_hash": transactionHash,
		"log_index":        logIndex,
		"status":           models.OrphanStatusPending,
	}
	update := bson.M{
		"$set": bson.M{"updated_at": time.Now()},
		"$inc": bson.M{"attempts": 1},
	}
	return app.DB.UpdateOne(models.CollectionOrphanEvents, filter, update)
}
