package zeta

import (
	"context"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/store"
	"github.com/chainweave-ai/chainweave-backend/zeta/autogen"
	"github.com/chainweave-ai/chainweave-backend/zeta/client"
	"github.com/chainweave-ai/chainweave-backend/zeta/util"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	MintMonitorName = "mint monitor"
)

// MintMonitorRunner tails the ChainWeave contract logs and reconciles every
// lifecycle event into the request store.
type MintMonitorRunner struct {
	startBlockNumber   int64
	currentBlockNumber int64
	nftContract        client.ChainWeaveContract
	client             client.ZetaClient
}

func (x *MintMonitorRunner) Run() {
	x.UpdateCurrentBlockNumber()
	x.SyncTxs()
}

func (x *MintMonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		ZetaBlockNumber: strconv.FormatInt(x.startBlockNumber, 10),
	}
}

func (x *MintMonitorRunner) UpdateCurrentBlockNumber() {
	res, err := x.client.GetBlockNumber()
	if err != nil {
		log.Error(err)
		return
	}
	x.currentBlockNumber = int64(res)
	log.Info("[MINT MONITOR] Current block number: ", x.currentBlockNumber)
}

func (x *MintMonitorRunner) HandleMintRequestedEvent(event *autogen.ChainWeaveNFTNFTMintRequested) bool {
	if event == nil {
		log.Error("[MINT MONITOR] Invalid mint requested event")
		return false
	}

	doc := util.CreateRequest(event)

	log.Debug("[MINT MONITOR] Handling mint requested event: ", event.Raw.TxHash, " ", event.Raw.Index)

	if err := store.ValidateRequest(doc); err != nil {
		// an invalid prompt will never pass validation, so retrying it only
		// pins the sync window; skip it and move on
		log.Warn("[MINT MONITOR] Skipping invalid mint request ", doc.RequestID, ": ", err)
		return true
	}

	if err := store.CreateRequest(doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Info("[MINT MONITOR] Found duplicate mint request: ", doc.RequestID)
			return true
		}
		log.Error("[MINT MONITOR] Error while storing mint request: ", err)
		return false
	}

	if err := store.TouchUser(doc.WalletAddress, app.Config.Pipeline.DefaultStyle); err != nil {
		log.Error("[MINT MONITOR] Error while upserting user: ", err)
		return false
	}

	if err := store.RecordRequestCreated(doc.WalletAddress); err != nil {
		log.Error("[MINT MONITOR] Error while recording analytics: ", err)
		return false
	}

	if fee, err := x.nftContract.GetRequestFee(&bind.CallOpts{}); err != nil {
		log.Error("[MINT MONITOR] Error while reading request fee: ", err)
	} else if event.Fee != nil && event.Fee.Cmp(fee) < 0 {
		log.Warn("[MINT MONITOR] Mint request ", doc.RequestID, " paid below the current fee: ", event.Fee, " < ", fee)
	}

	log.Info("[MINT MONITOR] Stored mint request: ", doc.RequestID)
	return true
}

func (x *MintMonitorRunner) HandleMintedEvent(event *autogen.ChainWeaveNFTNFTMinted) bool {
	if event == nil {
		log.Error("[MINT MONITOR] Invalid minted event")
		return false
	}

	requestId := util.HexFromRequestID(event.RequestId)

	log.Debug("[MINT MONITOR] Handling minted event: ", requestId)

	blockchain := models.BlockchainData{
		TransactionHash: event.Raw.TxHash.String(),
		TokenID:         event.TokenId.String(),
		ContractAddress: app.Config.Zeta.ContractAddress,
		BlockNumber:     strconv.FormatInt(int64(event.Raw.BlockNumber), 10),
		Confirmations:   strconv.FormatInt(app.Config.Zeta.Confirmations, 10),
	}

	matched, err := store.CompleteFromChainEvent(requestId, blockchain)
	if err != nil {
		log.Error("[MINT MONITOR] Error while completing request: ", err)
		return false
	}

	if matched == 0 {
		return x.handleUnmatchedMinted(requestId, event)
	}

	if doc, err := store.FindRequestByID(requestId); err == nil {
		if err := store.RecordRequestCompleted(doc.WalletAddress, 0); err != nil {
			log.Error("[MINT MONITOR] Error while recording analytics: ", err)
		}
		if err := store.TrackMintedItem(app.Config.Zeta.ContractAddress, doc.DestinationChainID); err != nil {
			log.Error("[MINT MONITOR] Error while tracking collection item: ", err)
		}
	} else {
		log.Error("[MINT MONITOR] Error while reading completed request: ", err)
	}

	log.Info("[MINT MONITOR] Completed request: ", requestId)
	return true
}

// handleUnmatchedMinted decides whether a zero-match minted event is a replay
// against a terminal request or a true orphan.
func (x *MintMonitorRunner) handleUnmatchedMinted(requestId string, event *autogen.ChainWeaveNFTNFTMinted) bool {
	doc, err := store.FindRequestByID(requestId)
	if err == nil {
		if models.IsTerminalStatus(doc.Status) {
			log.Info("[MINT MONITOR] Minted event replay for terminal request: ", requestId)
			return true
		}
		log.Error("[MINT MONITOR] Minted event did not match request in status: ", doc.Status)
		return false
	}
	if err != mongo.ErrNoDocuments {
		log.Error("[MINT MONITOR] Error while reading request: ", err)
		return false
	}

	orphan := util.CreateOrphanFromMinted(event)
	if err := store.CreateOrphan(orphan); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Info("[MINT MONITOR] Found duplicate orphan event: ", orphan.TransactionHash, " ", orphan.LogIndex)
			return true
		}
		log.Error("[MINT MONITOR] Error while storing orphan event: ", err)
		return false
	}

	log.Warn("[MINT MONITOR] Stored orphan minted event for unknown request: ", requestId)
	return true
}

func (x *MintMonitorRunner) HandleMintRevertedEvent(event *autogen.ChainWeaveNFTNFTMintReverted) bool {
	if event == nil {
		log.Error("[MINT MONITOR] Invalid mint reverted event")
		return false
	}

	requestId := util.HexFromRequestID(event.RequestId)

	log.Debug("[MINT MONITOR] Handling mint reverted event: ", requestId)

	matched, err := store.FailFromChainEvent(requestId, event.Reason)
	if err != nil {
		log.Error("[MINT MONITOR] Error while failing request: ", err)
		return false
	}

	if matched == 0 {
		return x.handleUnmatchedReverted(requestId, event)
	}

	if doc, err := store.FindRequestByID(requestId); err == nil {
		if err := store.RecordRequestFailed(doc.WalletAddress); err != nil {
			log.Error("[MINT MONITOR] Error while recording analytics: ", err)
		}
	} else {
		log.Error("[MINT MONITOR] Error while reading failed request: ", err)
	}

	log.Info("[MINT MONITOR] Failed request from revert: ", requestId)
	return true
}

func (x *MintMonitorRunner) handleUnmatchedReverted(requestId string, event *autogen.ChainWeaveNFTNFTMintReverted) bool {
	doc, err := store.FindRequestByID(requestId)
	if err == nil {
		if models.IsTerminalStatus(doc.Status) {
			log.Info("[MINT MONITOR] Reverted event replay for terminal request: ", requestId)
			return true
		}
		log.Error("[MINT MONITOR] Reverted event did not match request in status: ", doc.Status)
		return false
	}
	if err != mongo.ErrNoDocuments {
		log.Error("[MINT MONITOR] Error while reading request: ", err)
		return false
	}

	orphan := util.CreateOrphanFromReverted(event)
	if err := store.CreateOrphan(orphan); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Info("[MINT MONITOR] Found duplicate orphan event: ", orphan.TransactionHash, " ", orphan.LogIndex)
			return true
		}
		log.Error("[MINT MONITOR] Error while storing orphan event: ", err)
		return false
	}

	log.Warn("[MINT MONITOR] Stored orphan reverted event for unknown request: ", requestId)
	return true
}

func (x *MintMonitorRunner) HandleGenerationCompletedEvent(event *autogen.ChainWeaveNFTAIGenerationCompleted) bool {
	if event == nil {
		log.Error("[MINT MONITOR] Invalid generation completed event")
		return false
	}

	requestId := util.HexFromRequestID(event.RequestId)

	log.Debug("[MINT MONITOR] Handling generation completed event: ", requestId)

	matched, err := store.UpdateRequestStatus(requestId, models.StatusCrossChainPending, nil)
	if err != nil {
		log.Error("[MINT MONITOR] Error while promoting request: ", err)
		return false
	}

	if matched == 0 {
		// our own submission echoed back after the request moved on
		log.Debug("[MINT MONITOR] Generation completed event had no matching request: ", requestId)
		return true
	}

	log.Info("[MINT MONITOR] Request awaiting cross-chain mint: ", requestId)
	return true
}

func (x *MintMonitorRunner) SyncMintRequestedEvents(startBlockNumber uint64, endBlockNumber uint64) bool {
	filter, err := x.nftContract.FilterNFTMintRequested(&bind.FilterOpts{
		Start:   startBlockNumber,
		End:     &endBlockNumber,
		Context: context.Background(),
	}, [][32]byte{}, []common.Address{})

	if err != nil {
		log.Error("[MINT MONITOR] Error while syncing mint requested events: ", err)
		return false
	}

	var success = true
	for filter.Next() {
		success = x.HandleMintRequestedEvent(filter.Event()) && success
	}
	if err := filter.Error(); err != nil {
		log.Error("[MINT MONITOR] Error while iterating mint requested events: ", err)
		return false
	}
	return success
}

func (x *MintMonitorRunner) SyncMintedEvents(startBlockNumber uint64, endBlockNumber uint64) bool {
	filter, err := x.nftContract.FilterNFTMinted(&bind.FilterOpts{
		Start:   startBlockNumber,
		End:     &endBlockNumber,
		Context: context.Background(),
	}, [][32]byte{}, []*big.Int{})

	if err != nil {
		log.Error("[MINT MONITOR] Error while syncing minted events: ", err)
		return false
	}

	var success = true
	for filter.Next() {
		success = x.HandleMintedEvent(filter.Event()) && success
	}
	if err := filter.Error(); err != nil {
		log.Error("[MINT MONITOR] Error while iterating minted events: ", err)
		return false
	}
	return success
}

func (x *MintMonitorRunner) SyncMintRevertedEvents(startBlockNumber uint64, endBlockNumber uint64) bool {
	filter, err := x.nftContract.FilterNFTMintReverted(&bind.FilterOpts{
		Start:   startBlockNumber,
		End:     &endBlockNumber,
		Context: context.Background(),
	}, [][32]byte{})

	if err != nil {
		log.Error("[MINT MONITOR] Error while syncing mint reverted events: ", err)
		return false
	}

	var success = true
	for filter.Next() {
		success = x.HandleMintRevertedEvent(filter.Event()) && success
	}
	if err := filter.Error(); err != nil {
		log.Error("[MINT MONITOR] Error while iterating mint reverted events: ", err)
		return false
	}
	return success
}

func (x *MintMonitorRunner) SyncGenerationCompletedEvents(startBlockNumber uint64, endBlockNumber uint64) bool {
	filter, err := x.nftContract.FilterAIGenerationCompleted(&bind.FilterOpts{
		Start:   startBlockNumber,
		End:     &endBlockNumber,
		Context: context.Background(),
	}, [][32]byte{})

	if err != nil {
		log.Error("[MINT MONITOR] Error while syncing generation completed events: ", err)
		return false
	}

	var success = true
	for filter.Next() {
		success = x.HandleGenerationCompletedEvent(filter.Event()) && success
	}
	if err := filter.Error(); err != nil {
		log.Error("[MINT MONITOR] Error while iterating generation completed events: ", err)
		return false
	}
	return success
}

func (x *MintMonitorRunner) SyncBlocks(startBlockNumber uint64, endBlockNumber uint64) bool {
	success := x.SyncMintRequestedEvents(startBlockNumber, endBlockNumber)
	success = x.SyncGenerationCompletedEvents(startBlockNumber, endBlockNumber) && success
	success = x.SyncMintedEvents(startBlockNumber, endBlockNumber) && success
	success = x.SyncMintRevertedEvents(startBlockNumber, endBlockNumber) && success
	return success
}

func (x *MintMonitorRunner) SyncTxs() bool {
	if x.currentBlockNumber <= x.startBlockNumber {
		log.Info("[MINT MONITOR] No new blocks to sync")
		return true
	}

	var success = true
	if (x.currentBlockNumber - x.startBlockNumber) > client.MAX_QUERY_BLOCKS {
		log.Debug("[MINT MONITOR] Syncing events in chunks")
		for i := x.startBlockNumber; i < x.currentBlockNumber; i += client.MAX_QUERY_BLOCKS {
			endBlockNumber := i + client.MAX_QUERY_BLOCKS
			if endBlockNumber > x.currentBlockNumber {
				endBlockNumber = x.currentBlockNumber
			}
			log.Info("[MINT MONITOR] Syncing events from blockNumber: ", i, " to blockNumber: ", endBlockNumber)
			success = x.SyncBlocks(uint64(i), uint64(endBlockNumber)) && success
		}
	} else {
		log.Info("[MINT MONITOR] Syncing events from blockNumber: ", x.startBlockNumber, " to blockNumber: ", x.currentBlockNumber)
		success = x.SyncBlocks(uint64(x.startBlockNumber), uint64(x.currentBlockNumber)) && success
	}

	if success {
		x.startBlockNumber = x.currentBlockNumber
	}

	return success
}

func (x *MintMonitorRunner) InitStartBlockNumber(lastHealth models.ServiceHealth) {
	startBlockNumber := app.Config.Zeta.StartBlockNumber

	if lastBlockNumber, err := strconv.ParseInt(lastHealth.ZetaBlockNumber, 10, 64); err == nil {
		startBlockNumber = lastBlockNumber
	}

	if startBlockNumber > 0 {
		x.startBlockNumber = startBlockNumber
	} else {
		log.Warn("[MINT MONITOR] Found invalid start block number, updating to current block number")
		x.startBlockNumber = x.currentBlockNumber
	}

	log.Info("[MINT MONITOR] Start block number: ", x.startBlockNumber)
}

func NewMintMonitor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.MintMonitor.Enabled {
		log.Debug("[MINT MONITOR] Mint monitor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[MINT MONITOR] Initializing mint monitor")

	zetaClient, err := client.NewClient()
	if err != nil {
		log.Fatal("[MINT MONITOR] Error initializing zeta client: ", err)
	}

	contractAddress := common.HexToAddress(app.Config.Zeta.ContractAddress)

	log.Debug("[MINT MONITOR] Connecting to contract at: ", app.Config.Zeta.ContractAddress)
	contract, err := autogen.NewChainWeaveNFT(contractAddress, zetaClient.GetClient())
	if err != nil {
		log.Fatal("[MINT MONITOR] Error initializing ChainWeave contract: ", err)
	}
	log.Debug("[MINT MONITOR] Connected to contract")

	x := &MintMonitorRunner{
		startBlockNumber:   0,
		currentBlockNumber: 0,
		nftContract:        client.NewChainWeaveContract(contractAddress, contract),
		client:             zetaClient,
	}

	x.UpdateCurrentBlockNumber()

	x.InitStartBlockNumber(lastHealth)

	log.Info("[MINT MONITOR] Initialized mint monitor")

	return app.NewRunnerService(
		MintMonitorName,
		x,
		wg,
		time.Duration(app.Config.MintMonitor.IntervalMillis)*time.Millisecond,
	)
}
