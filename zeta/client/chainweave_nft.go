package client

import (
	"math/big"

	"github.com/chainweave-ai/chainweave-backend/zeta/autogen"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type MintRequestedIterator interface {
	Next() bool
	Event() *autogen.ChainWeaveNFTNFTMintRequested
	Error() error
	Close() error
}

type MintRequestedIteratorImpl struct {
	*autogen.ChainWeaveNFTNFTMintRequestedIterator
}

func (i *MintRequestedIteratorImpl) Event() *autogen.ChainWeaveNFTNFTMintRequested {
	return i.ChainWeaveNFTNFTMintRequestedIterator.Event
}

func (i *MintRequestedIteratorImpl) Next() bool {
	return i.ChainWeaveNFTNFTMintRequestedIterator.Next()
}

type MintedIterator interface {
	Next() bool
	Event() *autogen.ChainWeaveNFTNFTMinted
	Error() error
	Close() error
}

type MintedIteratorImpl struct {
	*autogen.ChainWeaveNFTNFTMintedIterator
}

func (i *MintedIteratorImpl) Event() *autogen.ChainWeaveNFTNFTMinted {
	return i.ChainWeaveNFTNFTMintedIterator.Event
}

func (i *MintedIteratorImpl) Next() bool {
	return i.ChainWeaveNFTNFTMintedIterator.Next()
}

type MintRevertedIterator interface {
	Next() bool
	Event() *autogen.ChainWeaveNFTNFTMintReverted
	Error() error
	Close() error
}

type MintRevertedIteratorImpl struct {
	*autogen.ChainWeaveNFTNFTMintRevertedIterator
}

func (i *MintRevertedIteratorImpl) Event() *autogen.ChainWeaveNFTNFTMintReverted {
	return i.ChainWeaveNFTNFTMintRevertedIterator.Event
}

func (i *MintRevertedIteratorImpl) Next() bool {
	return i.ChainWeaveNFTNFTMintRevertedIterator.Next()
}

type GenerationCompletedIterator interface {
	Next() bool
	Event() *autogen.ChainWeaveNFTAIGenerationCompleted
	Error() error
	Close() error
}

type GenerationCompletedIteratorImpl struct {
	*autogen.ChainWeaveNFTAIGenerationCompletedIterator
}

func (i *GenerationCompletedIteratorImpl) Event() *autogen.ChainWeaveNFTAIGenerationCompleted {
	return i.ChainWeaveNFTAIGenerationCompletedIterator.Event
}

func (i *GenerationCompletedIteratorImpl) Next() bool {
	return i.ChainWeaveNFTAIGenerationCompletedIterator.Next()
}

type ChainWeaveContract interface {
	Address() common.Address
	FilterNFTMintRequested(opts *bind.FilterOpts, requestId [][32]byte, sender []common.Address) (MintRequestedIterator, error)
	FilterNFTMinted(opts *bind.FilterOpts, requestId [][32]byte, tokenId []*big.Int) (MintedIterator, error)
	FilterNFTMintReverted(opts *bind.FilterOpts, requestId [][32]byte) (MintRevertedIterator, error)
	FilterAIGenerationCompleted(opts *bind.FilterOpts, requestId [][32]byte) (GenerationCompletedIterator, error)
	GetMintRequest(opts *bind.CallOpts, requestId [32]byte) (autogen.ChainWeaveNFTMintRequest, error)
	GetRequestFee(opts *bind.CallOpts) (*big.Int, error)
	SupportedChains(opts *bind.CallOpts, chainId *big.Int) (bool, error)
	CompleteAIGeneration(opts *bind.TransactOpts, requestId [32]byte, tokenURI string) (*types.Transaction, error)
}

type ChainWeaveContractImpl struct {
	contract *autogen.ChainWeaveNFT
	address  common.Address
}

func (c *ChainWeaveContractImpl) Address() common.Address {
	return c.address
}

func (c *ChainWeaveContractImpl) FilterNFTMintRequested(opts *bind.FilterOpts, requestId [][32]byte, sender []common.Address) (MintRequestedIterator, error) {
	iterator, err := c.contract.FilterNFTMintRequested(opts, requestId, sender)
	if err != nil {
		return nil, err
	}
	return &MintRequestedIteratorImpl{iterator}, nil
}

func (c *ChainWeaveContractImpl) FilterNFTMinted(opts *bind.FilterOpts, requestId [][32]byte, tokenId []*big.Int) (MintedIterator, error) {
	iterator, err := c.contract.FilterNFTMinted(opts, requestId, tokenId)
	if err != nil {
		return nil, err
	}
	return &MintedIteratorImpl{iterator}, nil
}

func (c *ChainWeaveContractImpl) FilterNFTMintReverted(opts *bind.FilterOpts, requestId [][32]byte) (MintRevertedIterator, error) {
	iterator, err := c.contract.FilterNFTMintReverted(opts, requestId)
	if err != nil {
		return nil, err
	}
	return &MintRevertedIteratorImpl{iterator}, nil
}

func (c *ChainWeaveContractImpl) FilterAIGenerationCompleted(opts *bind.FilterOpts, requestId [][32]byte) (GenerationCompletedIterator, error) {
	iterator, err := c.contract.FilterAIGenerationCompleted(opts, requestId)
	if err != nil {
		return nil, err
	}
	return &GenerationCompletedIteratorImpl{iterator}, nil
}

func (c *ChainWeaveContractImpl) GetMintRequest(opts *bind.CallOpts, requestId [32]byte) (autogen.ChainWeaveNFTMintRequest, error) {
	return c.contract.GetMintRequest(opts, requestId)
}

func (c *ChainWeaveContractImpl) GetRequestFee(opts *bind.CallOpts) (*big.Int, error) {
	return c.contract.GetRequestFee(opts)
}

func (c *ChainWeaveContractImpl) SupportedChains(opts *bind.CallOpts, chainId *big.Int) (bool, error) {
	return c.contract.SupportedChains(opts, chainId)
}

func (c *ChainWeaveContractImpl) CompleteAIGeneration(opts *bind.TransactOpts, requestId [32]byte, tokenURI string) (*types.Transaction, error) {
	return c.contract.CompleteAIGeneration(opts, requestId, tokenURI)
}

func NewChainWeaveContract(address common.Address, contract *autogen.ChainWeaveNFT) ChainWeaveContract {
	return &ChainWeaveContractImpl{
		contract: contract,
		address:  address,
	}
}
