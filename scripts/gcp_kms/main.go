package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chainweave-ai/chainweave-backend/common"
)

// Prints the eth address for a GCP KMS key and verifies a round-trip
// signature, useful when provisioning a new submitter key.
func main() {
	keyName := os.Getenv("GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", keyName)
	if keyName == "" {
		log.Fatalf("GCP KMS Key Name not set")
	}

	signer, err := common.NewGcpKmsSigner(keyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Eth Address: ", signer.EthAddress())

	data := []byte("chainweave signer check")
	signature, err := signer.EthSign(data)
	if err != nil {
		log.Fatalf("failed to sign data: %v", err)
	}

	fmt.Printf("Signature: 0x%x\n", signature)
}
