package pipeline

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

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

func NewTestArtGenerator(t *testing.T, mockGenerator *MockGenerator) *ArtGeneratorRunner {
	return &ArtGeneratorRunner{
		generator: mockGenerator,
		style:     "digital_art",
		batchSize: 10,
		timeout:   time.Second,
	}
}

func testRequest() *models.NFTRequest {
	return &models.NFTRequest{
		RequestID: "0xabc",
		Prompt:    "a cosmic whale swimming through a nebula",
		Status:    models.StatusPending,
	}
}

func TestArtGeneratorStatus(t *testing.T) {
	mockGenerator := NewMockGenerator(t)
	x := NewTestArtGenerator(t, mockGenerator)

	status := x.Status()
	assert.Equal(t, status.ZetaBlockNumber, "")
}

func TestArtGeneratorHandleRequest(t *testing.T) {

	t.Run("Nil request", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		x := NewTestArtGenerator(t, mockGenerator)

		assert.False(t, x.HandleRequest(nil))
	})

	t.Run("Lease Error", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, errors.New("error")).Once()

		assert.False(t, x.HandleRequest(testRequest()))
	})

	t.Run("Already Leased", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()

		assert.True(t, x.HandleRequest(testRequest()))
	})

	t.Run("Successful Generation", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		// lease
		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(1, nil).Once()

		mockGenerator.EXPECT().Generate(mock.Anything, "a cosmic whale swimming through a nebula", "digital_art").
			Return(&models.ArtworkResult{
				Model:    "stub",
				TokenURI: "ipfs://QmTest",
				IPFSHash: "QmTest",
				ImageURL: "ipfs://QmTest",
				Metadata: models.NFTMetadata{Name: "ChainWeave #1"},
			}, nil).Once()

		// completion update
		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusAICompleted, set["status"])
				data := set["ai_generation_data"].(models.AIGenerationData)
				assert.Equal(t, "ipfs://QmTest", data.TokenURI)
			}).
			Return(1, nil).Once()

		assert.True(t, x.HandleRequest(testRequest()))
	})

	t.Run("Generation Fails With Retries Left", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(1, nil).Once()

		mockGenerator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("model timeout")).Once()

		// release back to pending with retry_count 1
		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusPending, set["status"])
				assert.Equal(t, int64(1), set["ai_generation_data.retry_count"])
			}).
			Return(1, nil).Once()

		assert.True(t, x.HandleRequest(testRequest()))
	})

	t.Run("Generation Fails With Retries Exhausted", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		request := testRequest()
		request.AIGenerationData = &models.AIGenerationData{RetryCount: models.MaxGenerationRetries}

		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(1, nil).Once()

		mockGenerator.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("model timeout")).Once()

		// mark failed
		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				set := update.(bson.M)["$set"].(bson.M)
				assert.Equal(t, models.StatusFailed, set["status"])
				assert.Equal(t, "model timeout", set["error_message"])
			}).
			Return(1, nil).Once()

		assert.True(t, x.HandleRequest(request))
	})
}

func TestArtGeneratorSyncRequests(t *testing.T) {

	t.Run("Fetch Error", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		mockDB.EXPECT().FindManyPaginated(models.CollectionNFTRequests, mock.Anything, mock.Anything, int64(0), int64(10), mock.Anything).
			Return(errors.New("error")).Once()

		assert.False(t, x.SyncRequests())
	})

	t.Run("No Pending Requests", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		mockDB.EXPECT().FindManyPaginated(models.CollectionNFTRequests, mock.Anything, mock.Anything, int64(0), int64(10), mock.Anything).
			Return(nil).Once()

		assert.True(t, x.SyncRequests())
	})

	t.Run("Handles Each Pending Request", func(t *testing.T) {
		mockGenerator := NewMockGenerator(t)
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestArtGenerator(t, mockGenerator)

		mockDB.EXPECT().FindManyPaginated(models.CollectionNFTRequests, mock.Anything, mock.Anything, int64(0), int64(10), mock.Anything).
			Run(func(collection string, filter interface{}, sort interface{}, skip int64, limit int64, result interface{}) {
				docs := result.(*[]models.NFTRequest)
				*docs = []models.NFTRequest{*testRequest()}
			}).
			Return(nil).Once()

		// lease fails because another worker took it
		mockDB.EXPECT().UpdateOne(models.CollectionNFTRequests, mock.Anything, mock.Anything).
			Return(0, nil).Once()

		assert.True(t, x.SyncRequests())
	})
}

func TestNewArtGenerator(t *testing.T) {

	t.Run("Disabled", func(t *testing.T) {
		app.Config.ArtGenerator.Enabled = false

		service := NewArtGenerator(&sync.WaitGroup{}, models.ServiceHealth{})

		health := service.Health()

		assert.NotNil(t, health)
		assert.Equal(t, health.Name, models.EmptyServiceName)
	})

	t.Run("Valid", func(t *testing.T) {
		app.Config.ArtGenerator.Enabled = true
		app.Config.ArtGenerator.IntervalMillis = 1
		app.Config.ArtGenerator.BatchSize = 10
		app.Config.Pipeline.Model = "stub"
		app.Config.Pipeline.DefaultStyle = "digital_art"
		app.Config.Pipeline.GenerationTimeoutMillis = 1000

		service := NewArtGenerator(&sync.WaitGroup{}, models.ServiceHealth{})

		assert.NotNil(t, service)
	})
}
