package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func parseInt64ENV(name string, value *int64) {
	if os.Getenv(name) == "" {
		return
	}
	parsed, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", name, err.Error())
		return
	}
	*value = parsed
}

func parseBoolENV(name string, value *bool) {
	if os.Getenv(name) == "" {
		return
	}
	parsed, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		log.Warnf("[ENV] Error parsing %s: %s", name, err.Error())
		return
	}
	*value = parsed
}

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	parseInt64ENV("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// zeta
	if os.Getenv("ZETA_RPC_URL") != "" {
		Config.Zeta.RPCURL = os.Getenv("ZETA_RPC_URL")
	}
	if os.Getenv("ZETA_CHAIN_ID") != "" {
		Config.Zeta.ChainID = os.Getenv("ZETA_CHAIN_ID")
	}
	if os.Getenv("ZETA_PRIVATE_KEY") != "" {
		Config.Zeta.PrivateKey = os.Getenv("ZETA_PRIVATE_KEY")
	}
	if os.Getenv("ZETA_MNEMONIC") != "" {
		Config.Zeta.Mnemonic = os.Getenv("ZETA_MNEMONIC")
	}
	if os.Getenv("ZETA_GCP_KMS_KEY_NAME") != "" {
		Config.Zeta.GcpKmsKeyName = os.Getenv("ZETA_GCP_KMS_KEY_NAME")
	}
	if os.Getenv("ZETA_CONTRACT_ADDRESS") != "" {
		Config.Zeta.ContractAddress = os.Getenv("ZETA_CONTRACT_ADDRESS")
	}
	parseInt64ENV("ZETA_START_BLOCK_NUMBER", &Config.Zeta.StartBlockNumber)
	parseInt64ENV("ZETA_CONFIRMATIONS", &Config.Zeta.Confirmations)
	parseInt64ENV("ZETA_RPC_TIMEOUT_MS", &Config.Zeta.RPCTimeoutMillis)

	// pipeline
	if os.Getenv("PIPELINE_MODEL") != "" {
		Config.Pipeline.Model = os.Getenv("PIPELINE_MODEL")
	}
	if os.Getenv("PIPELINE_DEFAULT_STYLE") != "" {
		Config.Pipeline.DefaultStyle = os.Getenv("PIPELINE_DEFAULT_STYLE")
	}
	parseInt64ENV("PIPELINE_GENERATION_TIMEOUT_MS", &Config.Pipeline.GenerationTimeoutMillis)

	// mint monitor
	parseBoolENV("MINT_MONITOR_ENABLED", &Config.MintMonitor.Enabled)
	parseInt64ENV("MINT_MONITOR_INTERVAL_MS", &Config.MintMonitor.IntervalMillis)

	// art generator
	parseBoolENV("ART_GENERATOR_ENABLED", &Config.ArtGenerator.Enabled)
	parseInt64ENV("ART_GENERATOR_INTERVAL_MS", &Config.ArtGenerator.IntervalMillis)
	parseInt64ENV("ART_GENERATOR_BATCH_SIZE", &Config.ArtGenerator.BatchSize)

	// completion executor
	parseBoolENV("COMPLETION_EXECUTOR_ENABLED", &Config.CompletionExecutor.Enabled)
	parseInt64ENV("COMPLETION_EXECUTOR_INTERVAL_MS", &Config.CompletionExecutor.IntervalMillis)
	parseInt64ENV("COMPLETION_EXECUTOR_BATCH_SIZE", &Config.CompletionExecutor.BatchSize)
	parseInt64ENV("COMPLETION_EXECUTOR_MAX_SUBMIT_ATTEMPTS", &Config.CompletionExecutor.MaxSubmitAttempts)

	// orphan sweeper
	parseBoolENV("ORPHAN_SWEEPER_ENABLED", &Config.OrphanSweeper.Enabled)
	parseInt64ENV("ORPHAN_SWEEPER_INTERVAL_MS", &Config.OrphanSweeper.IntervalMillis)
	parseInt64ENV("ORPHAN_SWEEPER_MAX_AGE_MS", &Config.OrphanSweeper.MaxAgeMillis)

	// health check
	parseInt64ENV("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)
	parseBoolENV("HEALTH_CHECK_READ_LAST_HEALTH", &Config.HealthCheck.ReadLastHealth)

	// logging
	if os.Getenv("LOG_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOG_LEVEL")
	}

	// google secret manager
	parseBoolENV("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectId = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if os.Getenv("GOOGLE_SIGNER_SECRET_NAME") != "" {
		Config.GoogleSecretManager.SignerSecretName = os.Getenv("GOOGLE_SIGNER_SECRET_NAME")
	}
}
