package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/chainweave-ai/chainweave-backend/app"
	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/chainweave-ai/chainweave-backend/store"
	log "github.com/sirupsen/logrus"
)

const (
	ArtGeneratorName = "art generator"
)

// NewGenerator builds the pipeline implementation; swappable for tests and
// for deployments that wire a hosted adapter.
var NewGenerator = func() Generator {
	return NewStubGenerator(app.Config.Pipeline.Model)
}

type ArtGeneratorRunner struct {
	generator Generator
	style     string
	batchSize int64
	timeout   time.Duration
}

func (x *ArtGeneratorRunner) Run() {
	x.SyncRequests()
}

func (x *ArtGeneratorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

// HandleRequest leases a pending request, runs one generation pass and
// records the outcome. Returns false only on unexpected store errors.
func (x *ArtGeneratorRunner) HandleRequest(request *models.NFTRequest) bool {
	if request == nil {
		log.Error("[ART GENERATOR] Invalid request")
		return false
	}

	matched, err := store.LeaseRequestForProcessing(request.RequestID)
	if err != nil {
		log.Error("[ART GENERATOR] Error leasing request: ", err)
		return false
	}
	if matched == 0 {
		log.Debug("[ART GENERATOR] Request already leased: ", request.RequestID)
		return true
	}

	var retryCount int64
	if request.AIGenerationData != nil {
		retryCount = request.AIGenerationData.RetryCount
	}

	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()

	start := time.Now()
	artwork, err := x.generator.Generate(ctx, request.Prompt, x.style)
	if err != nil {
		log.Warn("[ART GENERATOR] Generation failed for request ", request.RequestID, ": ", err)
		return x.handleFailure(request.RequestID, retryCount, err)
	}

	data := models.AIGenerationData{
		Model:            artwork.Model,
		ImageURL:         artwork.ImageURL,
		IPFSHash:         artwork.IPFSHash,
		TokenURI:         artwork.TokenURI,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		RetryCount:       retryCount,
	}

	matched, err = store.CompleteGeneration(request.RequestID, data, artwork.Metadata)
	if err != nil {
		log.Error("[ART GENERATOR] Error storing generation result: ", err)
		return false
	}
	if matched == 0 {
		log.Info("[ART GENERATOR] Request moved on before result was stored: ", request.RequestID)
		return true
	}

	log.Info("[ART GENERATOR] Generated artwork for request: ", request.RequestID)
	return true
}

func (x *ArtGeneratorRunner) handleFailure(requestId string, retryCount int64, genErr error) bool {
	retryCount = retryCount + 1

	if retryCount > models.MaxGenerationRetries {
		log.Warn("[ART GENERATOR] Retries exhausted, failing request: ", requestId)
		_, err := store.MarkRequestFailed(requestId, genErr.Error())
		if err != nil {
			log.Error("[ART GENERATOR] Error failing request: ", err)
			return false
		}
		return true
	}

	_, err := store.ReleaseRequestToPending(requestId, retryCount, genErr.Error())
	if err != nil {
		log.Error("[ART GENERATOR] Error releasing request: ", err)
		return false
	}
	return true
}

func (x *ArtGeneratorRunner) SyncRequests() bool {
	requests, err := store.FindRequestsByStatus(models.StatusPending, x.batchSize)
	if err != nil {
		log.Error("[ART GENERATOR] Error fetching pending requests: ", err)
		return false
	}

	if len(requests) == 0 {
		log.Debug("[ART GENERATOR] No pending requests")
		return true
	}

	log.Info("[ART GENERATOR] Found ", len(requests), " pending requests")

	var success = true
	for i := range requests {
		success = x.HandleRequest(&requests[i]) && success
	}
	return success
}

func NewArtGenerator(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.ArtGenerator.Enabled {
		log.Debug("[ART GENERATOR] Service disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[ART GENERATOR] Initializing art generator")

	x := &ArtGeneratorRunner{
		generator: NewGenerator(),
		style:     app.Config.Pipeline.DefaultStyle,
		batchSize: app.Config.ArtGenerator.BatchSize,
		timeout:   time.Duration(app.Config.Pipeline.GenerationTimeoutMillis) * time.Millisecond,
	}

	log.Info("[ART GENERATOR] Initialized art generator")

	return app.NewRunnerService(
		ArtGeneratorName,
		x,
		wg,
		time.Duration(app.Config.ArtGenerator.IntervalMillis)*time.Millisecond,
	)
}
