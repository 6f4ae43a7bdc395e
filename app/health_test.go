package app

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func NewTestHealthService() *HealthService {
	return &HealthService{
		stop:          make(chan bool, 1),
		interval:      time.Second,
		signerAddress: "signerAddress",
		hostname:      "hostname",
	}
}

type MockService struct {
}

func (e *MockService) Start() {}

func (e *MockService) Stop() {
}

const MockServiceName = "mock"

func (e *MockService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:            MockServiceName,
		LastSyncTime:    time.Now(),
		NextSyncTime:    time.Now(),
		ZetaBlockNumber: "123",
		Healthy:         true,
	}
}

func TestHealthServiceHealth(t *testing.T) {
	x := NewTestHealthService()

	health := x.Health()

	assert.Equal(t, health.Name, HealthServiceName)
	assert.True(t, health.Healthy)
}

func TestSetServices(t *testing.T) {
	x := NewTestHealthService()
	wg := &sync.WaitGroup{}
	x.SetServices([]models.Service{
		models.NewEmptyService(wg),
		models.NewEmptyService(wg),
		&MockService{},
	})

	assert.Equal(t, len(x.services), 3)
}

func TestServiceHealths(t *testing.T) {
	x := NewTestHealthService()
	wg := &sync.WaitGroup{}
	x.SetServices([]models.Service{
		models.NewEmptyService(wg),
		models.NewEmptyService(wg),
		&MockService{},
	})

	healths := x.ServiceHealths()

	// empty services are skipped
	assert.Equal(t, len(healths), 1)
	assert.Equal(t, healths[0].Name, MockServiceName)
}

func TestFindLastHealth(t *testing.T) {

	t.Run("No Error", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthService()
		filter := bson.M{"hostname": x.hostname}
		var health models.Health
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, filter, &health).Return(nil)

		_, err := x.FindLastHealth()

		assert.Nil(t, err)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthService()
		filter := bson.M{"hostname": x.hostname}
		var health models.Health
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, filter, &health).Return(errors.New("error"))

		_, err := x.FindLastHealth()

		assert.NotNil(t, err)
		assert.Equal(t, err.Error(), "error")
	})

}

func TestLastServiceHealths(t *testing.T) {

	t.Run("Read Last Health Disabled", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		Config.HealthCheck.ReadLastHealth = false

		x := NewTestHealthService()
		healthMap := x.LastServiceHealths()

		assert.Equal(t, len(healthMap), 0)
	})

	t.Run("With Last Health", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		Config.HealthCheck.ReadLastHealth = true

		x := NewTestHealthService()

		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, result interface{}) {
				health := result.(*models.Health)
				health.ServiceHealths = []models.ServiceHealth{
					{Name: "mint monitor", ZetaBlockNumber: "42"},
				}
			}).
			Return(nil).Once()

		healthMap := x.LastServiceHealths()

		assert.Equal(t, len(healthMap), 1)
		assert.Equal(t, healthMap["mint monitor"].ZetaBlockNumber, "42")
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		Config.HealthCheck.ReadLastHealth = true

		x := NewTestHealthService()

		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).
			Return(errors.New("error")).Once()

		healthMap := x.LastServiceHealths()

		assert.Equal(t, len(healthMap), 0)
	})

}

func TestPostHealth(t *testing.T) {

	t.Run("No Error", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthService()
		x.SetServices([]models.Service{&MockService{}})

		mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				assert.Equal(t, bson.M{"hostname": "hostname"}, filter)
				set := update.(bson.M)["$set"].(bson.M)
				healths := set["service_healths"].([]models.ServiceHealth)
				assert.Equal(t, 1, len(healths))
			}).
			Return(nil).Once()

		assert.True(t, x.PostHealth())
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := NewMockDatabase(t)
		DB = mockDB

		x := NewTestHealthService()

		mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).
			Return(errors.New("error")).Once()

		assert.False(t, x.PostHealth())
	})

}

func TestHealthServiceStartStop(t *testing.T) {
	mockDB := NewMockDatabase(t)
	DB = mockDB

	x := NewTestHealthService()
	x.interval = 100 * time.Millisecond

	mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).Return(nil)

	done := make(chan bool, 1)
	go func() {
		x.Start()
		done <- true
	}()

	time.Sleep(250 * time.Millisecond)
	x.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("health service did not stop")
	}
}
