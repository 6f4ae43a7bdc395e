package store

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func validRequest() models.NFTRequest {
	return models.NFTRequest{
		RequestID:          "0x00000000000000000000000000000000000000000000000000000000000000ab",
		WalletAddress:      "0x0000000000000000000000000000000000ABCDEF",
		Prompt:             "a cosmic whale swimming through a nebula",
		SourceChainID:      7000,
		DestinationChainID: 137,
		Recipient:          "0x0000000000000000000000000000000000ABCDEF",
		Fee:                "100",
		Status:             models.StatusPending,
	}
}

func TestValidateRequest(t *testing.T) {

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(validRequest()))
	})

	t.Run("Empty Request ID", func(t *testing.T) {
		doc := validRequest()
		doc.RequestID = ""
		assert.ErrorIs(t, ValidateRequest(doc), ErrEmptyRequestID)
	})

	t.Run("Prompt Too Short", func(t *testing.T) {
		doc := validRequest()
		doc.Prompt = "short"
		assert.ErrorIs(t, ValidateRequest(doc), ErrPromptTooShort)
	})

	t.Run("Prompt Only Whitespace", func(t *testing.T) {
		doc := validRequest()
		doc.Prompt = "                    "
		assert.ErrorIs(t, ValidateRequest(doc), ErrPromptTooShort)
	})

	t.Run("Prompt Too Long", func(t *testing.T) {
		doc := validRequest()
		doc.Prompt = strings.Repeat("a", models.PromptMaxLength+1)
		assert.ErrorIs(t, ValidateRequest(doc), ErrPromptTooLong)
	})

	t.Run("Prompt At Max Length", func(t *testing.T) {
		doc := validRequest()
		doc.Prompt = strings.Repeat("a", models.PromptMaxLength)
		assert.NoError(t, ValidateRequest(doc))
	})
}

func TestCreateRequest(t *testing.T) {

	t.Run("Invalid Prompt Never Hits DB", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		doc := validRequest()
		doc.Prompt = "short"

		assert.ErrorIs(t, CreateRequest(doc), ErrPromptTooShort)
	})

	t.Run("Addresses Are Lowercased", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).
			Run(func(collection string, data interface{}) {
				stored := data.(models.NFTRequest)
				assert.Equal(t, "0x0000000000000000000000000000000000abcdef", stored.WalletAddress)
				assert.Equal(t, "0x0000000000000000000000000000000000abcdef", stored.Recipient)
			}).
			Return(nil, nil).Once()

		assert.NoError(t, CreateRequest(validRequest()))
	})

	t.Run("DB Error Passes Through", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().InsertOne(models.CollectionNFTRequests, mock.Anything).
			Return(nil, errors.New("insert error")).Once()

		assert.Error(t, CreateRequest(validRequest()))
	})
}

func TestUpdateRequestStatus(t *testing.T) {

	t.Run("Filter Carries Allowed Previous Statuses", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				f := filter.(bson.M)
				assert.Equal(t, "0xabc", f["request_id"])
				statusFilter := f["status"].(bson.M)
				allowed := statusFilter["$in"].([]string)
				assert.ElementsMatch(t, models.ValidPreviousStatuses(models.StatusAICompleted), allowed)
				assert.Contains(t, allowed, models.StatusProcessing)
				assert.NotContains(t, allowed, models.StatusCompleted)

				u := update.(bson.M)
				set := u["$set"].(bson.M)
				assert.Equal(t, models.StatusAICompleted, set["status"])
			}).
			Return(1, nil).Once()

		matched, err := UpdateRequestStatus("0xabc", models.StatusAICompleted, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("No Match For Terminal Request", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()

		matched, err := UpdateRequestStatus("0xabc", models.StatusCompleted, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})
}

func TestLeaseRequestForProcessing(t *testing.T) {
	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB

	mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
		Run(func(collection string, filter interface{}, update interface{}) {
			f := filter.(bson.M)
			assert.Equal(t, models.StatusPending, f["status"])

			u := update.(bson.M)
			set := u["$set"].(bson.M)
			assert.Equal(t, models.StatusProcessing, set["status"])
		}).
		Return(1, nil).Once()

	matched, err := LeaseRequestForProcessing("0xabc")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}

func TestRecordSubmitFailure(t *testing.T) {
	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB

	mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
		Run(func(collection string, filter interface{}, update interface{}) {
			f := filter.(bson.M)
			assert.Equal(t, models.StatusAICompleted, f["status"])

			u := update.(bson.M)
			inc := u["$inc"].(bson.M)
			assert.Equal(t, 1, inc["submit_attempts"])
		}).
		Return(1, nil).Once()

	matched, err := RecordSubmitFailure("0xabc", "gas estimate failed")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}

func TestFindRequestsByWallet(t *testing.T) {
	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB

	mockDB.EXPECT().FindManyPaginated(models.CollectionNFTRequests, mock.Anything, mock.Anything, int64(10), int64(5), mock.Anything).
		Run(func(collection string, filter interface{}, sort interface{}, skip int64, limit int64, result interface{}) {
			assert.Equal(t, bson.M{"wallet_address": "0x0000000000000000000000000000000000abcdef"}, filter)
			assert.Equal(t, bson.M{"created_at": -1}, sort)
		}).
		Return(nil).Once()

	_, err := FindRequestsByWallet("0x0000000000000000000000000000000000ABCDEF", 10, 5)
	assert.NoError(t, err)
}

func TestCompleteFromChainEvent(t *testing.T) {

	t.Run("Sets Blockchain Fields By Dotted Path", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				f := filter.(bson.M)
				statusFilter := f["status"].(bson.M)
				assert.ElementsMatch(t, models.NonTerminalStatuses(), statusFilter["$in"].([]string))

				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusCompleted, set["status"])
				assert.NotNil(t, set["completed_at"])
				assert.Equal(t, "42", set["blockchain_data.token_id"])
				assert.Equal(t, "0xa2", set["blockchain_data.transaction_hash"])
				// the submission record survives the confirming event: the
				// subdocument is never replaced and gas_used is left alone
				assert.Nil(t, set["blockchain_data"])
				assert.NotContains(t, set, "blockchain_data.gas_used")
			}).
			Return(1, nil).Once()

		matched, err := CompleteFromChainEvent("0xabc", models.BlockchainData{
			TransactionHash: "0xa2",
			TokenID:         "42",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("Empty Fields Are Not Set", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.NotContains(t, set, "blockchain_data.transaction_hash")
				assert.NotContains(t, set, "blockchain_data.token_id")
			}).
			Return(1, nil).Once()

		matched, err := CompleteFromChainEvent("0xabc", models.BlockchainData{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})
}

func TestMarkRequestCompleted(t *testing.T) {
	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB

	mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
		Run(func(collection string, filter interface{}, update interface{}) {
			u := update.(bson.M)
			set := u["$set"].(bson.M)
			assert.Equal(t, models.StatusCompleted, set["status"])
			assert.NotNil(t, set["completed_at"])
			assert.NotNil(t, set["blockchain_data"])
		}).
		Return(1, nil).Once()

	matched, err := MarkRequestCompleted("0xabc", models.BlockchainData{TransactionHash: "0xdef"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}
