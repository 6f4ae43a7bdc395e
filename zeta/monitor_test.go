package zeta

import (
	"errors"
	"io"
	"math/big"
	"sync"
	"testing"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/zeta/autogen"
	"github.com/chainweave-ai/chainweave-backend/zeta/client"
	"github.com/chainweave-ai/chainweave-backend/zeta/util"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func NewTestMintMonitor(t *testing.T, mockContract *client.MockChainWeaveContract, mockClient *client.MockZetaClient) *MintMonitorRunner {
	x := &MintMonitorRunner{
		startBlockNumber:   0,
		currentBlockNumber: 100,
		nftContract:        mockContract,
		client:             mockClient,
	}
	return x
}

func testMintRequestedEvent() *autogen.ChainWeaveNFTNFTMintRequested {
	return &autogen.ChainWeaveNFTNFTMintRequested{
		RequestId:          [32]byte{1},
		Sender:             common.HexToAddress("0x1234"),
		SourceChainId:      big.NewInt(7001),
		DestinationChainId: big.NewInt(137),
		Prompt:             "a cosmic whale swimming through a nebula",
		Recipient:          common.HexToAddress("0x5678"),
		Fee:                big.NewInt(1000),
		Raw:                types.Log{TxHash: common.HexToHash("0xa1"), BlockNumber: 50, Index: 0},
	}
}

func testMintedEvent() *autogen.ChainWeaveNFTNFTMinted {
	return &autogen.ChainWeaveNFTNFTMinted{
		RequestId:          [32]byte{1},
		TokenId:            big.NewInt(42),
		TokenURI:           "ipfs://QmTest",
		DestinationChainId: big.NewInt(137),
		Raw:                types.Log{TxHash: common.HexToHash("0xa2"), BlockNumber: 60, Index: 1},
	}
}

func testMintRevertedEvent() *autogen.ChainWeaveNFTNFTMintReverted {
	return &autogen.ChainWeaveNFTNFTMintReverted{
		RequestId: [32]byte{1},
		Reason:    "insufficient fee",
		Raw:       types.Log{TxHash: common.HexToHash("0xa3"), BlockNumber: 70, Index: 2},
	}
}

func testGenerationCompletedEvent() *autogen.ChainWeaveNFTAIGenerationCompleted {
	return &autogen.ChainWeaveNFTAIGenerationCompleted{
		RequestId: [32]byte{1},
		TokenURI:  "ipfs://QmTest",
		Raw:       types.Log{TxHash: common.HexToHash("0xa4"), BlockNumber: 80, Index: 3},
	}
}

func TestMintMonitorStatus(t *testing.T) {
	mockContract := client.NewMockChainWeaveContract(t)
	mockClient := client.NewMockZetaClient(t)
	x := NewTestMintMonitor(t, mockContract, mockClient)

	status := x.Status()
	assert.Equal(t, status.ZetaBlockNumber, "0")
}

func TestMintMonitorUpdateCurrentBlockNumber(t *testing.T) {

	t.Run("No Error", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockClient.EXPECT().GetBlockNumber().Return(uint64(200), nil)

		x.UpdateCurrentBlockNumber()

		assert.Equal(t, x.currentBlockNumber, int64(200))
	})

	t.Run("With Error", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockClient.EXPECT().GetBlockNumber().Return(uint64(200), errors.New("error"))

		x.UpdateCurrentBlockNumber()

		assert.Equal(t, x.currentBlockNumber, int64(100))
	})

}

func TestMintMonitorHandleMintRequestedEvent(t *testing.T) {

	t.Run("Nil event", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		assert.False(t, x.HandleMintRequestedEvent(nil))
	})

	t.Run("No Error", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).Return(nil, nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUsers, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionPlatformStats, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUserAnalytics, mock.Anything, mock.Anything).Return(nil).Once()
		mockContract.EXPECT().GetRequestFee(mock.Anything).Return(big.NewInt(1000), nil).Once()

		assert.True(t, x.HandleMintRequestedEvent(testMintRequestedEvent()))
	})

	t.Run("With Fee Below Current Fee", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).Return(nil, nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUsers, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionPlatformStats, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUserAnalytics, mock.Anything, mock.Anything).Return(nil).Once()
		// underpaid requests are logged but still stored
		mockContract.EXPECT().GetRequestFee(mock.Anything).Return(big.NewInt(2000), nil).Once()

		assert.True(t, x.HandleMintRequestedEvent(testMintRequestedEvent()))
	})

	t.Run("With Duplicate Key Error", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).
			Return(nil, mongo.CommandError{Code: 11000}).Once()

		assert.True(t, x.HandleMintRequestedEvent(testMintRequestedEvent()))
	})

	t.Run("With Other Error", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).
			Return(nil, errors.New("error")).Once()

		assert.False(t, x.HandleMintRequestedEvent(testMintRequestedEvent()))
	})

	t.Run("With Invalid Prompt", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		event := testMintRequestedEvent()
		event.Prompt = "short"

		// permanently invalid events are skipped, not retried
		assert.True(t, x.HandleMintRequestedEvent(event))
	})

}

func TestMintMonitorHandleMintedEvent(t *testing.T) {

	t.Run("Nil event", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		assert.False(t, x.HandleMintedEvent(nil))
	})

	t.Run("Request Matched", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusCompleted, set["status"])
				assert.Equal(t, "42", set["blockchain_data.token_id"])
				// the subdocument is never replaced wholesale
				assert.Nil(t, set["blockchain_data"])
			}).
			Return(1, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, result interface{}) {
				doc := result.(*models.NFTRequest)
				doc.WalletAddress = "0x1234"
				doc.DestinationChainID = 137
				doc.Status = models.StatusCompleted
			}).
			Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionPlatformStats, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUserAnalytics, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionCollections, mock.Anything, mock.Anything).Return(nil).Once()

		assert.True(t, x.HandleMintedEvent(testMintedEvent()))
	})

	t.Run("Replay Against Terminal Request", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, result interface{}) {
				doc := result.(*models.NFTRequest)
				doc.Status = models.StatusCompleted
			}).
			Return(nil).Once()

		assert.True(t, x.HandleMintedEvent(testMintedEvent()))
	})

	t.Run("Unmatched With Non Terminal Request", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, result interface{}) {
				doc := result.(*models.NFTRequest)
				doc.Status = models.StatusProcessing
			}).
			Return(nil).Once()

		assert.False(t, x.HandleMintedEvent(testMintedEvent()))
	})

	t.Run("Unknown Request Stores Orphan", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments).Once()
		mockDB.EXPECT().InsertOne(models.CollectionOrphanEvents, mock.Anything).
			Run(func(collection string, data interface{}) {
				orphan := data.(models.OrphanEvent)
				assert.Equal(t, models.OrphanEventMinted, orphan.EventType)
				assert.Equal(t, util.HexFromRequestID([32]byte{1}), orphan.RequestID)
			}).
			Return(nil, nil).Once()

		assert.True(t, x.HandleMintedEvent(testMintedEvent()))
	})

	t.Run("Duplicate Orphan", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments).Once()
		mockDB.EXPECT().InsertOne(models.CollectionOrphanEvents, mock.Anything).
			Return(nil, mongo.CommandError{Code: 11000}).Once()

		assert.True(t, x.HandleMintedEvent(testMintedEvent()))
	})

}

func TestMintMonitorHandleMintRevertedEvent(t *testing.T) {

	t.Run("Nil event", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		assert.False(t, x.HandleMintRevertedEvent(nil))
	})

	t.Run("Request Matched", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusFailed, set["status"])
				assert.Equal(t, "insufficient fee", set["error_message"])
			}).
			Return(1, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, result interface{}) {
				doc := result.(*models.NFTRequest)
				doc.WalletAddress = "0x1234"
				doc.Status = models.StatusFailed
			}).
			Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionPlatformStats, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUserAnalytics, mock.Anything, mock.Anything).Return(nil).Once()

		assert.True(t, x.HandleMintRevertedEvent(testMintRevertedEvent()))
	})

	t.Run("Unknown Request Stores Orphan", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()
		mockDB.EXPECT().FindOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments).Once()
		mockDB.EXPECT().InsertOne(models.CollectionOrphanEvents, mock.Anything).
			Run(func(collection string, data interface{}) {
				orphan := data.(models.OrphanEvent)
				assert.Equal(t, models.OrphanEventReverted, orphan.EventType)
				assert.Equal(t, "insufficient fee", orphan.RevertReason)
			}).
			Return(nil, nil).Once()

		assert.True(t, x.HandleMintRevertedEvent(testMintRevertedEvent()))
	})

}

func TestMintMonitorHandleGenerationCompletedEvent(t *testing.T) {

	t.Run("Nil event", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		assert.False(t, x.HandleGenerationCompletedEvent(nil))
	})

	t.Run("Request Matched", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusCrossChainPending, set["status"])
			}).
			Return(1, nil).Once()

		assert.True(t, x.HandleGenerationCompletedEvent(testGenerationCompletedEvent()))
	})

	t.Run("No Matching Request", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()

		assert.True(t, x.HandleGenerationCompletedEvent(testGenerationCompletedEvent()))
	})

	t.Run("With Error", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, errors.New("error")).Once()

		assert.False(t, x.HandleGenerationCompletedEvent(testGenerationCompletedEvent()))
	})

}

func TestMintMonitorInitStartBlockNumber(t *testing.T) {

	t.Run("Last Health Block Number is valid", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)

		lastHealth := models.ServiceHealth{
			ZetaBlockNumber: "10",
		}

		x.InitStartBlockNumber(lastHealth)

		assert.Equal(t, x.startBlockNumber, int64(10))
	})

	t.Run("Last Health Block Number is invalid", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)

		app.Config.Zeta.StartBlockNumber = 0

		lastHealth := models.ServiceHealth{
			ZetaBlockNumber: "invalid",
		}

		x.InitStartBlockNumber(lastHealth)

		assert.Equal(t, x.startBlockNumber, int64(100))
	})

	t.Run("Falls Back To Configured Block Number", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)

		app.Config.Zeta.StartBlockNumber = 5

		lastHealth := models.ServiceHealth{
			ZetaBlockNumber: "invalid",
		}

		x.InitStartBlockNumber(lastHealth)

		assert.Equal(t, x.startBlockNumber, int64(5))
	})

}

type MockMintRequestedFilter struct {
	shouldNext   bool
	shouldHandle bool
	called       bool
	filterError  error
	event        *autogen.ChainWeaveNFTNFTMintRequested
}

func (m *MockMintRequestedFilter) Close() error {
	return nil
}

func (m *MockMintRequestedFilter) Error() error {
	return m.filterError
}

func (m *MockMintRequestedFilter) Next() bool {
	if m.called {
		return false
	}
	m.called = true
	return m.shouldNext
}

func (m *MockMintRequestedFilter) Event() *autogen.ChainWeaveNFTNFTMintRequested {
	if m.event != nil {
		return m.event
	}
	if !m.shouldHandle {
		return nil
	}
	return testMintRequestedEvent()
}

type MockMintedFilter struct {
	shouldNext   bool
	shouldHandle bool
	called       bool
	filterError  error
}

func (m *MockMintedFilter) Close() error {
	return nil
}

func (m *MockMintedFilter) Error() error {
	return m.filterError
}

func (m *MockMintedFilter) Next() bool {
	if m.called {
		return false
	}
	m.called = true
	return m.shouldNext
}

func (m *MockMintedFilter) Event() *autogen.ChainWeaveNFTNFTMinted {
	if !m.shouldHandle {
		return nil
	}
	return testMintedEvent()
}

type MockMintRevertedFilter struct {
	shouldNext   bool
	shouldHandle bool
	called       bool
	filterError  error
}

func (m *MockMintRevertedFilter) Close() error {
	return nil
}

func (m *MockMintRevertedFilter) Error() error {
	return m.filterError
}

func (m *MockMintRevertedFilter) Next() bool {
	if m.called {
		return false
	}
	m.called = true
	return m.shouldNext
}

func (m *MockMintRevertedFilter) Event() *autogen.ChainWeaveNFTNFTMintReverted {
	if !m.shouldHandle {
		return nil
	}
	return testMintRevertedEvent()
}

type MockGenerationCompletedFilter struct {
	shouldNext   bool
	shouldHandle bool
	called       bool
	filterError  error
}

func (m *MockGenerationCompletedFilter) Close() error {
	return nil
}

func (m *MockGenerationCompletedFilter) Error() error {
	return m.filterError
}

func (m *MockGenerationCompletedFilter) Next() bool {
	if m.called {
		return false
	}
	m.called = true
	return m.shouldNext
}

func (m *MockGenerationCompletedFilter) Event() *autogen.ChainWeaveNFTAIGenerationCompleted {
	if !m.shouldHandle {
		return nil
	}
	return testGenerationCompletedEvent()
}

func TestMintMonitorSyncBlocks(t *testing.T) {

	t.Run("Successful Case", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(&MockMintRequestedFilter{shouldNext: true, shouldHandle: true}, nil).
			Run(func(opts *bind.FilterOpts, requestId [][32]byte, sender []common.Address) {
				assert.Equal(t, opts.Start, uint64(1))
				assert.Equal(t, *opts.End, uint64(100))
			}).Once()
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Once()

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).Return(nil, nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUsers, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionPlatformStats, mock.Anything, mock.Anything).Return(nil).Once()
		mockDB.EXPECT().UpsertOne(models.CollectionUserAnalytics, mock.Anything, mock.Anything).Return(nil).Once()
		mockContract.EXPECT().GetRequestFee(mock.Anything).Return(big.NewInt(1000), nil).Once()

		assert.True(t, x.SyncBlocks(1, 100))
	})

	t.Run("Error in Filtering", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(nil, errors.New("some error")).Once()
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Once()

		assert.False(t, x.SyncBlocks(1, 100))
	})

	t.Run("Error in Handling Events", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(&MockMintRequestedFilter{shouldNext: true, shouldHandle: false}, nil).Once()
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Once()

		assert.False(t, x.SyncBlocks(1, 100))
	})

	t.Run("Error During Filtering Iteration", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)

		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(&MockMintRequestedFilter{shouldNext: false, filterError: errors.New("iteration error")}, nil).Once()
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Once()

		assert.False(t, x.SyncBlocks(1, 100))
	})

}

func TestMintMonitorSyncTxs(t *testing.T) {

	t.Run("Start & Current Block Number are equal", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)
		x.currentBlockNumber = 100
		x.startBlockNumber = 100

		assert.True(t, x.SyncTxs())
	})

	t.Run("Start Block Number is greater than Current Block Number", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		x := NewTestMintMonitor(t, mockContract, mockClient)
		x.currentBlockNumber = 100
		x.startBlockNumber = 101

		assert.True(t, x.SyncTxs())
	})

	t.Run("Diff is less than MAX_QUERY_BLOCKS", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)
		x.currentBlockNumber = 100
		x.startBlockNumber = 1

		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(&MockMintRequestedFilter{}, nil).
			Run(func(opts *bind.FilterOpts, requestId [][32]byte, sender []common.Address) {
				assert.Equal(t, opts.Start, uint64(1))
				assert.Equal(t, *opts.End, uint64(100))
			}).Once()
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Once()

		assert.True(t, x.SyncTxs())

		assert.Equal(t, x.currentBlockNumber, x.startBlockNumber)
		assert.Equal(t, x.startBlockNumber, int64(100))
	})

	t.Run("Diff is greater than MAX_QUERY_BLOCKS", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)
		x.currentBlockNumber = 600
		x.startBlockNumber = 1

		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(&MockMintRequestedFilter{}, nil).Times(2)
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Times(2)
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Times(2)
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Times(2)

		assert.True(t, x.SyncTxs())

		assert.Equal(t, x.currentBlockNumber, x.startBlockNumber)
		assert.Equal(t, x.startBlockNumber, int64(600))
	})

	t.Run("Invalid Event Does Not Pin Start Block", func(t *testing.T) {
		mockContract := client.NewMockChainWeaveContract(t)
		mockClient := client.NewMockZetaClient(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestMintMonitor(t, mockContract, mockClient)
		x.currentBlockNumber = 100
		x.startBlockNumber = 1

		event := testMintRequestedEvent()
		event.Prompt = "short"

		// the same invalid event is re-delivered on every filter pass; it
		// must not hold the sync window back
		mockContract.EXPECT().FilterNFTMintRequested(mock.Anything, [][32]byte{}, []common.Address{}).
			Return(&MockMintRequestedFilter{shouldNext: true, event: event}, nil).Once()
		mockContract.EXPECT().FilterAIGenerationCompleted(mock.Anything, [][32]byte{}).
			Return(&MockGenerationCompletedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMinted(mock.Anything, [][32]byte{}, []*big.Int{}).
			Return(&MockMintedFilter{}, nil).Once()
		mockContract.EXPECT().FilterNFTMintReverted(mock.Anything, [][32]byte{}).
			Return(&MockMintRevertedFilter{}, nil).Once()

		assert.True(t, x.SyncTxs())

		assert.Equal(t, x.startBlockNumber, int64(100))
	})

}

func TestMintMonitorRun(t *testing.T) {
	mockContract := client.NewMockChainWeaveContract(t)
	mockClient := client.NewMockZetaClient(t)
	x := NewTestMintMonitor(t, mockContract, mockClient)
	x.startBlockNumber = 100

	mockClient.EXPECT().GetBlockNumber().Return(uint64(100), nil)

	x.Run()

	assert.Equal(t, x.startBlockNumber, int64(100))
}

func TestNewMintMonitor(t *testing.T) {

	t.Run("Disabled", func(t *testing.T) {
		app.Config.MintMonitor.Enabled = false

		service := NewMintMonitor(&sync.WaitGroup{}, models.ServiceHealth{})

		health := service.Health()

		assert.NotNil(t, health)
		assert.Equal(t, health.Name, models.EmptyServiceName)
	})

}
