package client

import (
	"context"
	"time"

	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/chainweave-ai/chainweave-backend/app"

	log "github.com/sirupsen/logrus"
)

const (
	MAX_QUERY_BLOCKS int64 = 499
)

type ZetaClient interface {
	ValidateNetwork()
	GetBlockNumber() (uint64, error)
	GetChainID() (*big.Int, error)
	GetClient() *ethclient.Client
	GetTransactionByHash(txHash string) (*types.Transaction, bool, error)
	GetTransactionReceipt(txHash string) (*types.Receipt, error)
	EstimateGas(msg ethereum.CallMsg) (uint64, error)
	SuggestGasPrice() (*big.Int, error)
}

type zetaClient struct {
	client *ethclient.Client
}

var Client ZetaClient = &zetaClient{}

func (c *zetaClient) GetClient() *ethclient.Client {
	return c.client
}

func (c *zetaClient) GetBlockNumber() (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Zeta.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return blockNumber, nil
}

func (c *zetaClient) GetChainID() (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Zeta.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return chainID, nil
}

func (c *zetaClient) ValidateNetwork() {
	log.Debugln("[ZETA]", "Validating network")
	log.Debugln("[ZETA]", "uri", app.Config.Zeta.RPCURL)
	client, err := ethclient.Dial(app.Config.Zeta.RPCURL)
	if err != nil {
		log.Fatalln("[ZETA]", "Failed to connect to ZetaChain node:", err)
	}
	c.client = client

	chainID, err := c.GetChainID()
	if err != nil {
		log.Fatalln("[ZETA]", "Failed to get chain ID:", err)
	}
	blockNumber, err := c.GetBlockNumber()
	if err != nil {
		log.Fatalln("[ZETA]", "Failed to get block number:", err)
	}

	log.Debugln("[ZETA]", "chainID", chainID.Uint64())

	if chainID.String() != app.Config.Zeta.ChainID {
		log.Fatalln("[ZETA]", "Chain ID Mismatch", "expected", app.Config.Zeta.ChainID, "got", chainID.Uint64())
	}

	log.Debugln("[ZETA]", "blockNumber", blockNumber)

	log.Infoln("[ZETA]", "Validated network")
}

func (c *zetaClient) GetTransactionByHash(txHash string) (*types.Transaction, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Zeta.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	tx, isPending, err := c.client.TransactionByHash(ctx, common.HexToHash(txHash))
	return tx, isPending, err
}

func (c *zetaClient) GetTransactionReceipt(txHash string) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Zeta.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	return receipt, err
}

func (c *zetaClient) EstimateGas(msg ethereum.CallMsg) (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Zeta.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	gas, err := c.client.EstimateGas(ctx, msg)
	return gas, err
}

func (c *zetaClient) SuggestGasPrice() (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Zeta.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	return gasPrice, err
}

func NewClient() (ZetaClient, error) {
	client, err := ethclient.Dial(app.Config.Zeta.RPCURL)
	return &zetaClient{
		client: client,
	}, err
}
