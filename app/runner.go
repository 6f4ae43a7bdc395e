package app

import (
	"sync"
	"time"

	"github.com/chainweave-ai/chainweave-backend/models"
	log "github.com/sirupsen/logrus"
)

// Runner is a single sync pass of a periodic service.
type Runner interface {
	Run()
	Status() models.RunnerStatus
}

// RunnerService drives a Runner on an interval and exposes its health.
type RunnerService struct {
	name     string
	runner   Runner
	interval time.Duration
	wg       *sync.WaitGroup

	stop     chan bool
	stopOnce sync.Once

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) *RunnerService {
	if name == "" || runner == nil || wg == nil || interval == 0 {
		log.Error("[RUNNER] Invalid parameters for runner service: ", name)
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		interval: interval,
		wg:       wg,
		stop:     make(chan bool),
	}
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Infof("[%s] Starting sync", x.name)

		x.runner.Run()

		x.updateHealth()

		log.Infof("[%s] Finished sync, Sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()
	status := x.runner.Status()

	x.health = models.ServiceHealth{
		Name:            x.name,
		LastSyncTime:    lastSyncTime,
		NextSyncTime:    lastSyncTime.Add(x.interval),
		ZetaBlockNumber: status.ZetaBlockNumber,
		Healthy:         true,
	}
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	x.stopOnce.Do(func() { close(x.stop) })
}
