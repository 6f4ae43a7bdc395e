package app

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/chainweave-ai/chainweave-backend/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSignerKeyFromGSM()
	validateConfig()
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file: ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s", configFile, err.Error())
	}
	return true
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}
	if Config.Zeta.RPCURL == "" {
		log.Fatal("[CONFIG] Zeta.RPCURL is required")
	}
	if Config.Zeta.ChainID == "" {
		log.Fatal("[CONFIG] Zeta.ChainID is required")
	}
	if Config.Zeta.RPCTimeoutMillis == 0 {
		log.Fatal("[CONFIG] Zeta.RPCTimeoutMillis is required")
	}
	if Config.Zeta.ContractAddress == "" {
		log.Fatal("[CONFIG] Zeta.ContractAddress is required")
	}
	if Config.Zeta.PrivateKey == "" && Config.Zeta.Mnemonic == "" && Config.Zeta.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] One of Zeta.PrivateKey, Zeta.Mnemonic or Zeta.GcpKmsKeyName is required")
	}
	if Config.MintMonitor.Enabled && Config.MintMonitor.IntervalMillis == 0 {
		log.Fatal("[CONFIG] MintMonitor.IntervalMillis is required")
	}
	if Config.ArtGenerator.Enabled && Config.ArtGenerator.IntervalMillis == 0 {
		log.Fatal("[CONFIG] ArtGenerator.IntervalMillis is required")
	}
	if Config.CompletionExecutor.Enabled && Config.CompletionExecutor.IntervalMillis == 0 {
		log.Fatal("[CONFIG] CompletionExecutor.IntervalMillis is required")
	}
	if Config.OrphanSweeper.Enabled && Config.OrphanSweeper.IntervalMillis == 0 {
		log.Fatal("[CONFIG] OrphanSweeper.IntervalMillis is required")
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}
	log.Debug("[CONFIG] Config validated")
}
