package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectId, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

func readSignerKeyFromGSM() {
	if Config.GoogleSecretManager.Enabled == false {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectId == "" {
		log.Fatalf("[GSM] ProjectId is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	if Config.Zeta.PrivateKey == "" {
		if Config.GoogleSecretManager.SignerSecretName == "" {
			log.Fatalf("[GSM] Signer secret name is empty")
		}

		log.Debug("[GSM] Reading signer private key")
		Config.Zeta.PrivateKey, err = accessSecretVersion(client, Config.GoogleSecretManager.SignerSecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access signer private key: %v", err)
		}
		log.Info("[GSM] Successfully read signer private key")
	}
}
