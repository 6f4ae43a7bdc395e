package app

import (
	"os"
	"time"

	"github.com/chainweave-ai/chainweave-backend/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const HealthServiceName = "health"

type HealthService struct {
	stop          chan bool
	interval      time.Duration
	signerAddress string
	hostname      string
	services      []models.Service
}

func (x *HealthService) SetServices(services []models.Service) {
	x.services = services
}

func (x *HealthService) ServiceHealths() []models.ServiceHealth {
	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == models.EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthService) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{"hostname": x.hostname}
	onInsert := bson.M{
		"hostname":       x.hostname,
		"signer_address": x.signerAddress,
		"created_at":     time.Now(),
	}
	update := bson.M{
		"$set": bson.M{
			"service_healths": x.ServiceHealths(),
			"updated_at":      time.Now(),
		},
		"$setOnInsert": onInsert,
	}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

// FindLastHealth reads the previous health document for this host, used to
// resume services from their last synced block number after a restart.
func (x *HealthService) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{"hostname": x.hostname}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthService) LastServiceHealths() map[string]models.ServiceHealth {
	healthMap := map[string]models.ServiceHealth{}

	if !Config.HealthCheck.ReadLastHealth {
		return healthMap
	}

	lastHealth, err := x.FindLastHealth()
	if err != nil {
		log.Warn("[HEALTH] Error getting last health: ", err)
		return healthMap
	}

	for _, serviceHealth := range lastHealth.ServiceHealths {
		healthMap[serviceHealth.Name] = serviceHealth
	}
	return healthMap
}

func (x *HealthService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         HealthServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now().Add(x.interval),
		Healthy:      true,
	}
}

func (x *HealthService) Stop() {
	log.Debug("[HEALTH] Stopping health")
	x.stop <- true
}

func (x *HealthService) Start() {
	log.Debug("[HEALTH] Starting health")
	stop := false
	for !stop {
		log.Debug("[HEALTH] Starting health sync")

		x.PostHealth()

		log.Debug("[HEALTH] Finished health sync")
		log.Debug("[HEALTH] Sleeping for ", x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Debug("[HEALTH] Stopped health")
		case <-time.After(x.interval):
		}
	}
}

func NewHealthService() *HealthService {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthService{
		stop:          make(chan bool),
		interval:      time.Duration(Config.HealthCheck.IntervalMillis) * time.Millisecond,
		signerAddress: GetSignerAddress(),
		hostname:      hostname,
	}

	log.Debug("[HEALTH] Initialized health")

	return x
}
