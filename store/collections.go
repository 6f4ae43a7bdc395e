package store

import (
	"strings"
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

// TrackMintedItem bumps the item count of the destination collection when a
// mint confirms, creating the record on first contact.
func TrackMintedItem(contractAddress string, chainId int64) error {
	contract := strings.ToLower(contractAddress)

	filter := bson.M{"contract_address": contract, "chain_id": chainId}
	update := bson.M{
		"$setOnInsert": bson.M{
			"contract_address": contract,
			"chain_id":         chainId,
			"name":             "ChainWeave AI",
			"symbol":           "CWAI",
			"created_at":       time.Now(),
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
		"$inc": bson.M{
			"item_count": 1,
		},
	}

	return app.DB.UpsertOne(models.CollectionCollections, filter, update)
}

func FindCollection(contractAddress string, chainId int64) (models.Collection, error) {
	var doc models.Collection
	filter := bson.M{"contract_address": strings.ToLower(contractAddress), "chain_id": chainId}
	err := app.DB.FindOne(models.CollectionCollections, filter, &doc)
	return doc, err
}
