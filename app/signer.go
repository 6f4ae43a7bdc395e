package app

import (
	"fmt"

	"github.com/chainweave-ai/chainweave-backend/common"
	log "github.com/sirupsen/logrus"
)

// CreateSigner builds the backend signer from whichever key source is
// configured: a raw hex key, a mnemonic, or a GCP KMS key name.
func CreateSigner() (common.Signer, error) {
	config := Config.Zeta
	if config.PrivateKey != "" {
		return common.NewPrivateKeySigner(config.PrivateKey)
	}
	if config.Mnemonic != "" {
		return common.NewMnemonicSigner(config.Mnemonic)
	}
	if config.GcpKmsKeyName != "" {
		return common.NewGcpKmsSigner(config.GcpKmsKeyName)
	}
	return nil, fmt.Errorf("no signer key configured")
}

// GetSignerAddress resolves the backend signer address, fatally on error.
func GetSignerAddress() string {
	signer, err := CreateSigner()
	if err != nil {
		log.Fatal("[SIGNER] Error creating signer: ", err)
	}
	defer signer.Destroy()

	address := signer.EthAddress().Hex()
	log.Debug("[SIGNER] Signer address: ", address)
	return address
}
