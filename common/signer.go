package common

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// Interface Definition
type Signer interface {
	EthSign(data []byte) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}

func EthereumPrivateKeyFromMnemonic(mnemonic string) (*ecdsa.PrivateKey, error) {
	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet from mnemonic: %w", err)
	}

	path := hdwallet.MustParseDerivationPath(DefaultETHHDPath)
	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	return wallet.PrivateKey(account)
}

// Struct Definition
type PrivateKeySigner struct {
	ethAddress common.Address
	ethPrivKey *ecdsa.PrivateKey
}

var _ Signer = &PrivateKeySigner{}

// Constructor Function
func NewPrivateKeySigner(hexKey string) (*PrivateKeySigner, error) {
	ethPrivKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKeyECDSA, _ := ethPrivKey.Public().(*ecdsa.PublicKey) // impossible to get an error since the private key is not nil

	return &PrivateKeySigner{
		ethPrivKey: ethPrivKey,
		ethAddress: crypto.PubkeyToAddress(*publicKeyECDSA),
	}, nil
}

// Destructor Function
func (s *PrivateKeySigner) Destroy() {
	// nothing to do
}

// Method Implementations
func (s *PrivateKeySigner) EthSign(data []byte) ([]byte, error) {
	digest := data
	if len(digest) != 32 {
		digest = crypto.Keccak256(data)
	}
	hash := common.BytesToHash(digest)
	signature, err := crypto.Sign(hash[:], s.ethPrivKey)
	if err != nil {
		return nil, err
	}

	if signature[64] == 0 || signature[64] == 1 {
		signature[64] += 27
	}

	return signature, nil
}

func (s *PrivateKeySigner) EthAddress() common.Address {
	return s.ethAddress
}

// NewTransactorFromSigner adapts a Signer into bind.TransactOpts so contract
// transactions can be submitted regardless of where the key lives.
func NewTransactorFromSigner(signer Signer, chainID *big.Int) (*bind.TransactOpts, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer is nil")
	}
	if chainID == nil {
		return nil, bind.ErrNoChainID
	}

	txSigner := types.LatestSignerForChainID(chainID)
	from := signer.EthAddress()

	return &bind.TransactOpts{
		From: from,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, bind.ErrNotAuthorized
			}
			hash := txSigner.Hash(tx)
			signature, err := signer.EthSign(hash.Bytes())
			if err != nil {
				return nil, err
			}
			// EthSign returns v in {27,28}; WithSignature expects {0,1}
			if signature[64] >= 27 {
				signature[64] -= 27
			}
			return tx.WithSignature(txSigner, signature)
		},
	}, nil
}
