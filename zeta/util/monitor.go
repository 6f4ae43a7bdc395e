package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/zeta/autogen"
	"github.com/ethereum/go-ethereum/common"
)

// HexFromRequestID renders a bytes32 request id the way it is stored in mongo.
func HexFromRequestID(requestId [32]byte) string {
	return common.BytesToHash(requestId[:]).Hex()
}

func CreateRequest(event *autogen.ChainWeaveNFTNFTMintRequested) models.NFTRequest {
	doc := models.NFTRequest{
		RequestID:          HexFromRequestID(event.RequestId),
		WalletAddress:      strings.ToLower(event.Sender.Hex()),
		Prompt:             event.Prompt,
		SourceChainID:      event.SourceChainId.Int64(),
		DestinationChainID: event.DestinationChainId.Int64(),
		Recipient:          strings.ToLower(event.Recipient.Hex()),
		Fee:                event.Fee.String(),
		Status:             models.StatusPending,
		SubmitAttempts:     0,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	return doc
}

func CreateOrphanFromMinted(event *autogen.ChainWeaveNFTNFTMinted) models.OrphanEvent {
	doc := models.OrphanEvent{
		EventType:          models.OrphanEventMinted,
		RequestID:          HexFromRequestID(event.RequestId),
		TransactionHash:    event.Raw.TxHash.String(),
		LogIndex:           strconv.FormatInt(int64(event.Raw.Index), 10),
		BlockNumber:        strconv.FormatInt(int64(event.Raw.BlockNumber), 10),
		TokenID:            event.TokenId.String(),
		TokenURI:           event.TokenURI,
		DestinationChainID: event.DestinationChainId.Int64(),
		Status:             models.OrphanStatusPending,
		Attempts:           0,
		FirstSeenAt:        time.Now(),
		UpdatedAt:          time.Now(),
	}
	return doc
}

func CreateOrphanFromReverted(event *autogen.ChainWeaveNFTNFTMintReverted) models.OrphanEvent {
	doc := models.OrphanEvent{
		EventType:       models.OrphanEventReverted,
		RequestID:       HexFromRequestID(event.RequestId),
		TransactionHash: event.Raw.TxHash.String(),
		LogIndex:        strconv.FormatInt(int64(event.Raw.Index), 10),
		BlockNumber:     strconv.FormatInt(int64(event.Raw.BlockNumber), 10),
		RevertReason:    event.Reason,
		Status:          models.OrphanStatusPending,
		Attempts:        0,
		FirstSeenAt:     time.Now(),
		UpdatedAt:       time.Now(),
	}
	return doc
}
