package store

import (
	"strings"
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

// TouchUser upserts the user record for a wallet and bumps its request count.
// First contact creates the record with default preferences.
func TouchUser(walletAddress string, defaultStyle string) error {
	wallet := strings.ToLower(walletAddress)

	filter := bson.M{"wallet_address": wallet}
	update := bson.M{
		"$setOnInsert": bson.M{
			"wallet_address": wallet,
			"is_active":      true,
			"preferences": models.UserPreferences{
				DefaultStyle:  defaultStyle,
				Notifications: true,
			},
			"created_at": time.Now(),
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
		"$inc": bson.M{
			"total_requests": 1,
		},
	}

	return app.DB.UpsertOne(models.CollectionUsers, filter, update)
}

func FindUser(walletAddress string) (models.User, error) {
	var doc models.User
	err := app.DB.FindOne(models.CollectionUsers, bson.M{"wallet_address": strings.ToLower(walletAddress)}, &doc)
	return doc, err
}

// DeactivateUser soft-deletes a user; their requests stay in place.
func DeactivateUser(walletAddress string) (int64, error) {
	filter := bson.M{"wallet_address": strings.ToLower(walletAddress)}
	update := bson.M{
		"$set": bson.M{
			"is_active":  false,
			"updated_at": time.Now(),
		},
	}
	return app.DB.UpdateOne(models.CollectionUsers, filter, update)
}
