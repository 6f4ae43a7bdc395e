package zeta

import (
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/store"
)

const (
	OrphanSweeperName = "orphan sweeper"

	sweepBatchSize int64 = 100
)

// OrphanSweeperRunner retries terminal contract events that arrived before
// their request record existed. An orphan resolves once its event applies to
// the request store, and expires after staying unmatched past maxAge.
type OrphanSweeperRunner struct {
	maxAge time.Duration
}

func (x *OrphanSweeperRunner) Run() {
	x.SyncOrphans()
}

func (x *OrphanSweeperRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *OrphanSweeperRunner) applyOrphan(orphan *models.OrphanEvent) (int64, error) {
	switch orphan.EventType {
	case models.OrphanEventMinted:
		blockchain := models.BlockchainData{
			TransactionHash: orphan.TransactionHash,
			TokenID:         orphan.TokenID,
			ContractAddress: app.Config.Zeta.ContractAddress,
			BlockNumber:     orphan.BlockNumber,
			Confirmations:   strconv.FormatInt(app.Config.Zeta.Confirmations, 10),
		}
		return store.CompleteFromChainEvent(orphan.RequestID, blockchain)
	case models.OrphanEventReverted:
		return store.FailFromChainEvent(orphan.RequestID, orphan.RevertReason)
	default:
		log.Error("[ORPHAN SWEEPER] Unknown event type: ", orphan.EventType)
		return 0, nil
	}
}

func (x *OrphanSweeperRunner) HandleOrphan(orphan *models.OrphanEvent) bool {
	if orphan == nil {
		log.Error("[ORPHAN SWEEPER] Invalid orphan event")
		return false
	}

	matched, err := x.applyOrphan(orphan)
	if err != nil {
		log.Error("[ORPHAN SWEEPER] Error applying orphan event: ", err)
		return false
	}

	if matched > 0 {
		log.Info("[ORPHAN SWEEPER] Resolved orphan event for request: ", orphan.RequestID)
		if _, err := store.ResolveOrphan(orphan.TransactionHash, orphan.LogIndex); err != nil {
			log.Error("[ORPHAN SWEEPER] Error resolving orphan event: ", err)
			return false
		}
		return true
	}

	// request may exist in a terminal status already; the event is stale then
	doc, err := store.FindRequestByID(orphan.RequestID)
	if err == nil && models.IsTerminalStatus(doc.Status) {
		log.Debug("[ORPHAN SWEEPER] Request already terminal, resolving orphan: ", orphan.RequestID)
		if _, err := store.ResolveOrphan(orphan.TransactionHash, orphan.LogIndex); err != nil {
			log.Error("[ORPHAN SWEEPER] Error resolving orphan event: ", err)
			return false
		}
		return true
	}

	if time.Since(orphan.FirstSeenAt) > x.maxAge {
		log.Warn("[ORPHAN SWEEPER] Orphan event expired for request: ", orphan.RequestID)
		if _, err := store.ExpireOrphan(orphan.TransactionHash, orphan.LogIndex); err != nil {
			log.Error("[ORPHAN SWEEPER] Error expiring orphan event: ", err)
			return false
		}
		return true
	}

	if _, err := store.TouchOrphan(orphan.TransactionHash, orphan.LogIndex); err != nil {
		log.Error("[ORPHAN SWEEPER] Error updating orphan event: ", err)
		return false
	}
	return true
}

func (x *OrphanSweeperRunner) SyncOrphans() bool {
	orphans, err := store.FindPendingOrphans(sweepBatchSize)
	if err != nil {
		log.Error("[ORPHAN SWEEPER] Error fetching orphan events: ", err)
		return false
	}

	if len(orphans) == 0 {
		log.Debug("[ORPHAN SWEEPER] No pending orphan events")
		return true
	}

	log.Info("[ORPHAN SWEEPER] Found ", len(orphans), " pending orphan events")

	var success = true
	for i := range orphans {
		success = x.HandleOrphan(&orphans[i]) && success
	}

	return success
}

func NewOrphanSweeper(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.OrphanSweeper.Enabled {
		log.Debug("[ORPHAN SWEEPER] Orphan sweeper disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[ORPHAN SWEEPER] Initializing orphan sweeper")

	x := &OrphanSweeperRunner{
		maxAge: time.Duration(app.Config.OrphanSweeper.MaxAgeMillis) * time.Millisecond,
	}

	log.Info("[ORPHAN SWEEPER] Initialized orphan sweeper")

	return app.NewRunnerService(
		OrphanSweeperName,
		x,
		wg,
		time.Duration(app.Config.OrphanSweeper.IntervalMillis)*time.Millisecond,
	)
}
