package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/chainweave-ai/chainweave-backend/models"
	"github.com/ethereum/go-ethereum/crypto"
)

// Generator produces artwork for a prompt. Implementations wrap a hosted
// image model and an IPFS pinning service; the stub below is used for
// development and tests.
type Generator interface {
	Generate(ctx context.Context, prompt string, style string) (*models.ArtworkResult, error)
}

// StubGenerator derives content-addressed placeholder artifacts from the
// prompt so the rest of the lifecycle can run without external services.
type StubGenerator struct {
	model string
}

var _ Generator = &StubGenerator{}

func NewStubGenerator(model string) *StubGenerator {
	return &StubGenerator{model: model}
}

func (g *StubGenerator) Generate(ctx context.Context, prompt string, style string) (*models.ArtworkResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	digest := crypto.Keccak256([]byte(style + ":" + prompt))
	contentHash := hex.EncodeToString(digest)

	ipfsHash := "Qm" + contentHash[:44]
	tokenURI := "ipfs://" + ipfsHash

	metadata := models.NFTMetadata{
		Name:        fmt.Sprintf("ChainWeave #%s", contentHash[:8]),
		Description: prompt,
		Image:       tokenURI,
		Attributes: []models.NFTAttribute{
			{TraitType: "style", Value: style},
			{TraitType: "model", Value: g.model},
		},
	}

	return &models.ArtworkResult{
		Model:            g.model,
		ImageURL:         tokenURI,
		IPFSHash:         ipfsHash,
		TokenURI:         tokenURI,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Metadata:         metadata,
	}, nil
}
