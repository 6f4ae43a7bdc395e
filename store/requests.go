package store

import (
	"errors"
	"strings"
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrPromptTooShort = errors.New("prompt is too short")
	ErrPromptTooLong  = errors.New("prompt is too long")
	ErrEmptyRequestID = errors.New("request id is empty")
)

// ValidateRequest checks the request document before it is stored.
func ValidateRequest(doc models.NFTRequest) error {
	if doc.RequestID == "" {
		return ErrEmptyRequestID
	}
	prompt := strings.TrimSpace(doc.Prompt)
	if len(prompt) < models.PromptMinLength {
		return ErrPromptTooShort
	}
	if len(prompt) > models.PromptMaxLength {
		return ErrPromptTooLong
	}
	return nil
}

// CreateRequest validates and stores a new request document. A duplicate key
// error is passed through so the caller can treat replays as already handled.
func CreateRequest(doc models.NFTRequest) error {
	if err := ValidateRequest(doc); err != nil {
		return err
	}
	doc.WalletAddress = strings.ToLower(doc.WalletAddress)
	doc.Recipient = strings.ToLower(doc.Recipient)
	_, err := app.DB.InsertOne(models.CollectionNFTRequests, doc)
	return err
}

func FindRequestByID(requestId string) (models.NFTRequest, error) {
	var doc models.NFTRequest
	err := app.DB.FindOne(models.CollectionNFTRequests, bson.M{"request_id": requestId}, &doc)
	return doc, err
}

// FindRequestsByWallet returns a page of a wallet's requests, newest first.
func FindRequestsByWallet(walletAddress string, skip int64, limit int64) ([]models.NFTRequest, error) {
	var docs []models.NFTRequest
	filter := bson.M{"wallet_address": strings.ToLower(walletAddress)}
	sort := bson.M{"created_at": -1}
	err := app.DB.FindManyPaginated(models.CollectionNFTRequests, filter, sort, skip, limit, &docs)
	return docs, err
}

// FindRequestsByStatus returns the oldest requests in the given status.
func FindRequestsByStatus(status string, limit int64) ([]models.NFTRequest, error) {
	var docs []models.NFTRequest
	filter := bson.M{"status": status}
	sort := bson.M{"created_at": 1}
	err := app.DB.FindManyPaginated(models.CollectionNFTRequests, filter, sort, 0, limit, &docs)
	return docs, err
}

// UpdateRequestStatus moves a request to the given status. The filter carries
// the set of statuses the transition table allows as previous states, so a
// request that has already moved on is left untouched and the matched count
// is zero.
func UpdateRequestStatus(requestId string, toStatus string, set bson.M) (int64, error) {
	filter := bson.M{
		"request_id": requestId,
		"status": bson.M{
			"$in": models.ValidPreviousStatuses(toStatus),
		},
	}

	fields := bson.M{
		"status":     toStatus,
		"updated_at": time.Now(),
	}
	for key, value := range set {
		fields[key] = value
	}

	return app.DB.UpdateOne(models.CollectionNFTRequests, filter, bson.M{"$set": fields})
}

// LeaseRequestForProcessing atomically claims a pending request for the art
// pipeline. A zero matched count means another worker got there first.
func LeaseRequestForProcessing(requestId string) (int64, error) {
	filter := bson.M{
		"request_id": requestId,
		"status":     models.StatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.StatusProcessing,
			"updated_at": time.Now(),
		},
	}
	return app.DB.UpdateOne(models.CollectionNFTRequests, filter, update)
}

// ReleaseRequestToPending returns a processing request to the queue after a
// recoverable generation failure, bumping the retry counter.
func ReleaseRequestToPending(requestId string, retryCount int64, errorMessage string) (int64, error) {
	filter := bson.M{
		"request_id": requestId,
		"status":     models.StatusProcessing,
	}
	update := bson.M{
		"$set": bson.M{
			"status":                         models.StatusPending,
			"ai_generation_data.retry_count": retryCount,
			"error_message":                  errorMessage,
			"updated_at":                     time.Now(),
		},
	}
	return app.DB.UpdateOne(models.CollectionNFTRequests, filter, update)
}

// CompleteGeneration records the pipeline output and moves the request to
// ai_completed in a single conditional update.
func CompleteGeneration(requestId string, data models.AIGenerationData, metadata models.NFTMetadata) (int64, error) {
	return UpdateRequestStatus(requestId, models.StatusAICompleted, bson.M{
		"ai_generation_data": data,
		"metadata":           metadata,
		"error_message":      "",
	})
}

// MarkRequestCompleted finalizes a request once the mint is confirmed on the
// destination chain.
func MarkRequestCompleted(requestId string, blockchain models.BlockchainData) (int64, error) {
	now := time.Now()
	return UpdateRequestStatus(requestId, models.StatusCompleted, bson.M{
		"blockchain_data": blockchain,
		"completed_at":    now,
	})
}

func MarkRequestFailed(requestId string, errorMessage string) (int64, error) {
	return UpdateRequestStatus(requestId, models.StatusFailed, bson.M{
		"error_message": errorMessage,
	})
}

// CompleteFromChainEvent applies an observed NFTMinted event. The mint is the
// source of truth, so any non-terminal status may complete; a terminal request
// is left untouched and the matched count is zero. The blockchain fields are
// set by dotted path so submission-time values like gas_used survive the
// confirming event.
func CompleteFromChainEvent(requestId string, blockchain models.BlockchainData) (int64, error) {
	filter := bson.M{
		"request_id": requestId,
		"status": bson.M{
			"$in": models.NonTerminalStatuses(),
		},
	}
	set := bson.M{
		"status":       models.StatusCompleted,
		"completed_at": time.Now(),
		"updated_at":   time.Now(),
	}
	if blockchain.TransactionHash != "" {
		set["blockchain_data.transaction_hash"] = blockchain.TransactionHash
	}
	if blockchain.TokenID != "" {
		set["blockchain_data.token_id"] = blockchain.TokenID
	}
	if blockchain.ContractAddress != "" {
		set["blockchain_data.contract_address"] = blockchain.ContractAddress
	}
	if blockchain.BlockNumber != "" {
		set["blockchain_data.block_number"] = blockchain.BlockNumber
	}
	if blockchain.Confirmations != "" {
		set["blockchain_data.confirmations"] = blockchain.Confirmations
	}
	return app.DB.UpdateOne(models.CollectionNFTRequests, filter, bson.M{"$set": set})
}

// FailFromChainEvent applies an observed NFTMintReverted event with the same
// non-terminal precondition as CompleteFromChainEvent.
func FailFromChainEvent(requestId string, reason string) (int64, error) {
	filter := bson.M{
		"request_id": requestId,
		"status": bson.M{
			"$in": models.NonTerminalStatuses(),
		},
	}
	update := bson.M{
		"$set": bson.M{
			"status":        models.StatusFailed,
			"error_message": reason,
			"updated_at":    time.Now(),
		},
	}
	return app.DB.UpdateOne(models.CollectionNFTRequests, filter, update)
}

// RecordSubmitFailure keeps a request in ai_completed after a failed
// completion tx and bumps the attempt counter.
func RecordSubmitFailure(requestId string, errorMessage string) (int64, error) {
	filter := bson.M{
		"request_id": requestId,
		"status":     models.StatusAICompleted,
	}
	update := bson.M{
		"$set": bson.M{
			"error_message": errorMessage,
			"updated_at":    time.Now(),
		},
		"$inc": bson.M{
			"submit_attempts": 1,
		},
	}
	return app.DB.UpdateOne(models.CollectionNFTRequests, filter, update)
}
