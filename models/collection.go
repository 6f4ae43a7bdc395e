package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionCollections = "collections"
)

type Collection struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string              `bson:"name" json:"name"`
	Symbol          string              `bson:"symbol" json:"symbol"`
	CreatorAddress  string              `bson:"creator_address" json:"creator_address"`
	ContractAddress string              `bson:"contract_address" json:"contract_address"`
	ChainID         int64               `bson:"chain_id" json:"chain_id"`
	ItemCount       int64               `bson:"item_count" json:"item_count"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}
