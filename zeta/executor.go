package zeta

import (
	"math/big"
	"strconv"
	"sync"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/common"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/store"
	"github.com/chainweave-ai/chainweave-backend/zeta/autogen"
	"github.com/chainweave-ai/chainweave-backend/zeta/client"
)

const (
	CompletionExecutorName = "completion executor"

	completionSubmitterLock = "completion-submitter"
)

// CompletionExecutorRunner submits completeAIGeneration transactions for
// requests whose artwork is ready. Submissions are serialized under a mongo
// lock so only one instance talks to the chain at a time.
type CompletionExecutorRunner struct {
	signer      common.Signer
	chainID     *big.Int
	contractAbi *abi.ABI
	nftContract client.ChainWeaveContract
	client      client.ZetaClient

	batchSize         int64
	maxSubmitAttempts int64

	receiptAttempts int
	receiptInterval time.Duration
}

func (x *CompletionExecutorRunner) Run() {
	x.SyncRequests()
}

func (x *CompletionExecutorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

// WaitForReceipt polls for the transaction receipt; one mined confirmation is
// enough for the destination-chain mint to proceed. A transaction the node no
// longer knows about was dropped from the mempool and will never get a
// receipt, so waiting out the remaining attempts is pointless.
func (x *CompletionExecutorRunner) WaitForReceipt(txHash string) *types.Receipt {
	for i := 0; i < x.receiptAttempts; i++ {
		receipt, err := x.client.GetTransactionReceipt(txHash)
		if err == nil && receipt != nil {
			return receipt
		}
		if _, _, err := x.client.GetTransactionByHash(txHash); err != nil {
			log.Warn("[COMPLETION EXECUTOR] Completion tx dropped by the node: ", txHash)
			return nil
		}
		time.Sleep(x.receiptInterval)
	}
	return nil
}

func (x *CompletionExecutorRunner) recordSubmitFailure(request *models.NFTRequest, message string) bool {
	log.Warn("[COMPLETION EXECUTOR] Submission failed for request ", request.RequestID, ": ", message)

	if _, err := store.RecordSubmitFailure(request.RequestID, message); err != nil {
		log.Error("[COMPLETION EXECUTOR] Error recording submit failure: ", err)
		return false
	}

	if request.SubmitAttempts+1 >= x.maxSubmitAttempts {
		log.Warn("[COMPLETION EXECUTOR] Submit attempts exhausted, failing request: ", request.RequestID)
		if _, err := store.MarkRequestFailed(request.RequestID, message); err != nil {
			log.Error("[COMPLETION EXECUTOR] Error failing request: ", err)
			return false
		}
		if err := store.RecordRequestFailed(request.WalletAddress); err != nil {
			log.Error("[COMPLETION EXECUTOR] Error recording analytics: ", err)
		}
	}

	return true
}

// SubmitCompletion estimates gas with a 20% margin, sends the completion
// transaction and records the outcome.
func (x *CompletionExecutorRunner) SubmitCompletion(request *models.NFTRequest, requestId [32]byte) bool {
	tokenURI := request.AIGenerationData.TokenURI
	contractAddress := ethcommon.HexToAddress(app.Config.Zeta.ContractAddress)

	calldata, err := x.contractAbi.Pack("completeAIGeneration", requestId, tokenURI)
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error packing calldata: ", err)
		return false
	}

	estimate, err := x.client.EstimateGas(ethereum.CallMsg{
		From: x.signer.EthAddress(),
		To:   &contractAddress,
		Data: calldata,
	})
	if err != nil {
		return x.recordSubmitFailure(request, "gas estimate failed: "+err.Error())
	}

	gasPrice, err := x.client.SuggestGasPrice()
	if err != nil {
		return x.recordSubmitFailure(request, "gas price failed: "+err.Error())
	}

	opts, err := common.NewTransactorFromSigner(x.signer, x.chainID)
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error creating transactor: ", err)
		return false
	}
	opts.GasLimit = estimate * 12 / 10
	opts.GasPrice = gasPrice

	tx, err := x.nftContract.CompleteAIGeneration(opts, requestId, tokenURI)
	if err != nil {
		return x.recordSubmitFailure(request, "submission failed: "+err.Error())
	}

	log.Info("[COMPLETION EXECUTOR] Submitted completion tx: ", tx.Hash().String())

	receipt := x.WaitForReceipt(tx.Hash().String())
	if receipt == nil {
		return x.recordSubmitFailure(request, "timed out waiting for receipt: "+tx.Hash().String())
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return x.recordSubmitFailure(request, "completion transaction reverted: "+tx.Hash().String())
	}

	blockchain := models.BlockchainData{
		TransactionHash: tx.Hash().String(),
		ContractAddress: app.Config.Zeta.ContractAddress,
		GasUsed:         strconv.FormatUint(receipt.GasUsed, 10),
		BlockNumber:     receipt.BlockNumber.String(),
		Confirmations:   "1",
	}

	matched, err := store.UpdateRequestStatus(request.RequestID, models.StatusCrossChainPending, bson.M{
		"blockchain_data": blockchain,
		"error_message":   "",
	})
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error updating request after submission: ", err)
		return false
	}
	if matched == 0 {
		log.Info("[COMPLETION EXECUTOR] Request moved on before submission was recorded: ", request.RequestID)
		return true
	}

	if err := store.RecordGasUsed(int64(receipt.GasUsed)); err != nil {
		log.Error("[COMPLETION EXECUTOR] Error recording gas stats: ", err)
	}

	log.Info("[COMPLETION EXECUTOR] Request awaiting cross-chain mint: ", request.RequestID)
	return true
}

func (x *CompletionExecutorRunner) HandleRequest(request *models.NFTRequest) bool {
	if request == nil {
		log.Error("[COMPLETION EXECUTOR] Invalid request")
		return false
	}

	if request.AIGenerationData == nil || request.AIGenerationData.TokenURI == "" {
		log.Error("[COMPLETION EXECUTOR] Request has no token URI: ", request.RequestID)
		if _, err := store.MarkRequestFailed(request.RequestID, "missing token uri"); err != nil {
			log.Error("[COMPLETION EXECUTOR] Error failing request: ", err)
			return false
		}
		return true
	}

	// re-read under the lock; another instance may have submitted already
	doc, err := store.FindRequestByID(request.RequestID)
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error reading request: ", err)
		return false
	}
	if doc.Status != models.StatusAICompleted {
		log.Debug("[COMPLETION EXECUTOR] Request already handled: ", request.RequestID)
		return true
	}

	requestId := [32]byte(ethcommon.HexToHash(doc.RequestID))

	supported, err := x.nftContract.SupportedChains(&bind.CallOpts{}, big.NewInt(doc.DestinationChainID))
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error checking destination chain: ", err)
		return false
	}
	if !supported {
		log.Warn("[COMPLETION EXECUTOR] Unsupported destination chain ", doc.DestinationChainID, " for request: ", doc.RequestID)
		if _, err := store.MarkRequestFailed(doc.RequestID, "unsupported destination chain"); err != nil {
			log.Error("[COMPLETION EXECUTOR] Error failing request: ", err)
			return false
		}
		if err := store.RecordRequestFailed(doc.WalletAddress); err != nil {
			log.Error("[COMPLETION EXECUTOR] Error recording analytics: ", err)
		}
		return true
	}

	onchain, err := x.nftContract.GetMintRequest(&bind.CallOpts{}, requestId)
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error reading on-chain request: ", err)
		return false
	}
	if onchain.Fulfilled {
		log.Info("[COMPLETION EXECUTOR] Request already fulfilled on-chain: ", doc.RequestID)
		if _, err := store.UpdateRequestStatus(doc.RequestID, models.StatusCrossChainPending, nil); err != nil {
			log.Error("[COMPLETION EXECUTOR] Error promoting fulfilled request: ", err)
			return false
		}
		return true
	}

	return x.SubmitCompletion(&doc, requestId)
}

func (x *CompletionExecutorRunner) SyncRequests() bool {
	requests, err := store.FindRequestsByStatus(models.StatusAICompleted, x.batchSize)
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error fetching requests: ", err)
		return false
	}

	if len(requests) == 0 {
		log.Debug("[COMPLETION EXECUTOR] No requests ready for submission")
		return true
	}

	log.Info("[COMPLETION EXECUTOR] Found ", len(requests), " requests ready for submission")

	lockId, err := app.DB.XLock(completionSubmitterLock)
	if err != nil {
		log.Error("[COMPLETION EXECUTOR] Error acquiring lock: ", err)
		return false
	}
	log.Debug("[COMPLETION EXECUTOR] Acquired lock: ", lockId)

	var success = true
	for i := range requests {
		success = x.HandleRequest(&requests[i]) && success
	}

	if err := app.DB.Unlock(lockId); err != nil {
		log.Error("[COMPLETION EXECUTOR] Error releasing lock: ", err)
		success = false
	} else {
		log.Debug("[COMPLETION EXECUTOR] Released lock: ", lockId)
	}

	return success
}

func NewCompletionExecutor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.CompletionExecutor.Enabled {
		log.Debug("[COMPLETION EXECUTOR] Completion executor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[COMPLETION EXECUTOR] Initializing completion executor")

	zetaClient, err := client.NewClient()
	if err != nil {
		log.Fatal("[COMPLETION EXECUTOR] Error initializing zeta client: ", err)
	}

	contractAddress := ethcommon.HexToAddress(app.Config.Zeta.ContractAddress)

	contract, err := autogen.NewChainWeaveNFT(contractAddress, zetaClient.GetClient())
	if err != nil {
		log.Fatal("[COMPLETION EXECUTOR] Error initializing ChainWeave contract: ", err)
	}

	contractAbi, err := autogen.ChainWeaveNFTMetaData.GetAbi()
	if err != nil {
		log.Fatal("[COMPLETION EXECUTOR] Error parsing contract ABI: ", err)
	}

	signer, err := app.CreateSigner()
	if err != nil {
		log.Fatal("[COMPLETION EXECUTOR] Error creating signer: ", err)
	}

	chainID, ok := new(big.Int).SetString(app.Config.Zeta.ChainID, 10)
	if !ok {
		log.Fatal("[COMPLETION EXECUTOR] Invalid chain id: ", app.Config.Zeta.ChainID)
	}

	x := &CompletionExecutorRunner{
		signer:            signer,
		chainID:           chainID,
		contractAbi:       contractAbi,
		nftContract:       client.NewChainWeaveContract(contractAddress, contract),
		client:            zetaClient,
		batchSize:         app.Config.CompletionExecutor.BatchSize,
		maxSubmitAttempts: app.Config.CompletionExecutor.MaxSubmitAttempts,
		receiptAttempts:   30,
		receiptInterval:   2 * time.Second,
	}

	log.Info("[COMPLETION EXECUTOR] Initialized completion executor")

	return app.NewRunnerService(
		CompletionExecutorName,
		x,
		wg,
		time.Duration(app.Config.CompletionExecutor.IntervalMillis)*time.Millisecond,
	)
}
