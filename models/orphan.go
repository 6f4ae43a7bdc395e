package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionOrphanEvents = "orphan_events"
)

// types of orphan events
const (
	OrphanEventMinted   = "nft_minted"
	OrphanEventReverted = "nft_mint_reverted"
)

// orphan statuses
const (
	OrphanStatusPending  = "pending"
	OrphanStatusResolved = "resolved"
	OrphanStatusExpired  = "expired"
)

// OrphanEvent is a terminal contract event that arrived before its request
// record existed. The sweeper retries these against the request store instead
// of dropping them.
type OrphanEvent struct {
	Id                 *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	EventType          string              `bson:"event_type" json:"event_type"`
	RequestID          string              `bson:"request_id" json:"request_id"`
	TransactionHash    string              `bson:"transaction_hash" json:"transaction_hash"`
	LogIndex           string              `bson:"log_index" json:"log_index"`
	BlockNumber        string              `bson:"block_number" json:"block_number"`
	TokenID            string              `bson:"token_id,omitempty" json:"token_id,omitempty"`
	TokenURI           string              `bson:"token_uri,omitempty" json:"token_uri,omitempty"`
	RevertReason       string              `bson:"revert_reason,omitempty" json:"revert_reason,omitempty"`
	DestinationChainID int64               `bson:"destination_chain_id,omitempty" json:"destination_chain_id,omitempty"`
	Status             string              `bson:"status" json:"status"`
	Attempts           int64               `bson:"attempts" json:"attempts"`
	FirstSeenAt        time.Time           `bson:"first_seen_at" json:"first_seen_at"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updated_at"`
}
