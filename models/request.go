package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionNFTRequests = "nftrequests"
)

// request statuses
const (
	StatusPending           = "pending"
	StatusProcessing        = "processing"
	StatusAICompleted       = "ai_completed"
	StatusCrossChainPending = "cross_chain_pending"
	StatusCompleted         = "completed"
	StatusFailed            = "failed"
	StatusCancelled         = "cancelled"
)

const (
	PromptMinLength = 10
	PromptMaxLength = 500

	MaxGenerationRetries = 3
)

// requestTransitions is the set of allowed forward transitions for a request.
// Terminal statuses have no entries and can never be left.
var requestTransitions = map[string][]string{
	StatusPending:           {StatusProcessing, StatusCancelled, StatusFailed},
	StatusProcessing:        {StatusAICompleted, StatusPending, StatusFailed},
	StatusAICompleted:       {StatusCrossChainPending, StatusCompleted, StatusFailed},
	StatusCrossChainPending: {StatusCompleted, StatusFailed},
}

func CanTransition(from string, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidPreviousStatuses returns every status from which a request may move to
// the given status, used to build the precondition filter of a status update.
func ValidPreviousStatuses(to string) []string {
	var from []string
	for status, allowed := range requestTransitions {
		for _, next := range allowed {
			if next == to {
				from = append(from, status)
			}
		}
	}
	return from
}

func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed || status == StatusCancelled
}

func NonTerminalStatuses() []string {
	return []string{StatusPending, StatusProcessing, StatusAICompleted, StatusCrossChainPending}
}

type AIGenerationData struct {
	Model            string `bson:"model" json:"model"`
	ImageURL         string `bson:"image_url" json:"image_url"`
	IPFSHash         string `bson:"ipfs_hash" json:"ipfs_hash"`
	TokenURI         string `bson:"token_uri" json:"token_uri"`
	ProcessingTimeMs int64  `bson:"processing_time_ms" json:"processing_time_ms"`
	RetryCount       int64  `bson:"retry_count" json:"retry_count"`
}

type BlockchainData struct {
	TransactionHash string `bson:"transaction_hash" json:"transaction_hash"`
	TokenID         string `bson:"token_id" json:"token_id"`
	ContractAddress string `bson:"contract_address" json:"contract_address"`
	GasUsed         string `bson:"gas_used" json:"gas_used"`
	BlockNumber     string `bson:"block_number" json:"block_number"`
	Confirmations   string `bson:"confirmations" json:"confirmations"`
}

type NFTAttribute struct {
	TraitType string `bson:"trait_type" json:"trait_type"`
	Value     string `bson:"value" json:"value"`
}

type NFTMetadata struct {
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description" json:"description"`
	Image       string         `bson:"image" json:"image"`
	Attributes  []NFTAttribute `bson:"attributes" json:"attributes"`
}

type NFTRequest struct {
	Id                 *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RequestID          string              `bson:"request_id" json:"request_id"`
	WalletAddress      string              `bson:"wallet_address" json:"wallet_address"`
	Prompt             string              `bson:"prompt" json:"prompt"`
	SourceChainID      int64               `bson:"source_chain_id" json:"source_chain_id"`
	DestinationChainID int64               `bson:"destination_chain_id" json:"destination_chain_id"`
	Recipient          string              `bson:"recipient" json:"recipient"`
	Fee                string              `bson:"fee" json:"fee"`
	Status             string              `bson:"status" json:"status"`
	AIGenerationData   *AIGenerationData   `bson:"ai_generation_data,omitempty" json:"ai_generation_data,omitempty"`
	BlockchainData     *BlockchainData     `bson:"blockchain_data,omitempty" json:"blockchain_data,omitempty"`
	Metadata           *NFTMetadata        `bson:"metadata,omitempty" json:"metadata,omitempty"`
	ErrorMessage       string              `bson:"error_message,omitempty" json:"error_message,omitempty"`
	SubmitAttempts     int64               `bson:"submit_attempts" json:"submit_attempts"`
	CreatedAt          time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updated_at"`
	CompletedAt        *time.Time          `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
