package main

import (
	"sync"

	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/pipeline"
	"github.com/chainweave-ai/chainweave-backend/zeta"
)

type ServiceFactory func(*sync.WaitGroup, models.ServiceHealth) models.Service

func GetServiceFactories() map[string]ServiceFactory {
	return map[string]ServiceFactory{
		zeta.MintMonitorName:        zeta.NewMintMonitor,
		pipeline.ArtGeneratorName:   pipeline.NewArtGenerator,
		zeta.CompletionExecutorName: zeta.NewCompletionExecutor,
		zeta.OrphanSweeperName:      zeta.NewOrphanSweeper,
	}
}

func CreateService(
	wg *sync.WaitGroup,
	serviceName string,
	serviceHealthMap map[string]models.ServiceHealth,
	factory ServiceFactory,
) models.Service {
	lastHealth := serviceHealthMap[serviceName]
	return factory(wg, lastHealth)
}
