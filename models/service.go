package models

import (
	"sync"
	"time"
)

type Service interface {
	Start()
	Health() ServiceHealth
	Stop()
}

type RunnerStatus struct {
	ZetaBlockNumber string
}

type ServiceHealth struct {
	Name            string    `bson:"name" json:"name"`
	LastSyncTime    time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime    time.Time `bson:"next_sync_time" json:"next_sync_time"`
	ZetaBlockNumber string    `bson:"zeta_block_number" json:"zeta_block_number"`
	Healthy         bool      `bson:"healthy" json:"healthy"`
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() ServiceHealth {
	return ServiceHealth{
		Name:            EmptyServiceName,
		LastSyncTime:    time.Now(),
		NextSyncTime:    time.Now(),
		ZetaBlockNumber: "",
		Healthy:         true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
