package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Zeta                ZetaConfig                `yaml:"zeta" json:"zeta"`
	Pipeline            PipelineConfig            `yaml:"pipeline" json:"pipeline"`
	MintMonitor         ServiceConfig             `yaml:"mint_monitor" json:"mint_monitor"`
	ArtGenerator        ArtGeneratorConfig        `yaml:"art_generator" json:"art_generator"`
	CompletionExecutor  CompletionExecutorConfig  `yaml:"completion_executor" json:"completion_executor"`
	OrphanSweeper       OrphanSweeperConfig       `yaml:"orphan_sweeper" json:"orphan_sweeper"`
}

type GoogleSecretManagerConfig struct {
	Enabled          bool   `yaml:"enabled" json:"enabled"`
	ProjectId        string `yaml:"project_id" json:"project_id"`
	SignerSecretName string `yaml:"signer_secret_name" json:"signer_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type ZetaConfig struct {
	StartBlockNumber int64  `yaml:"start_block_number" json:"start_block_number"`
	Confirmations    int64  `yaml:"confirmations" json:"confirmations"`
	PrivateKey       string `yaml:"private_key" json:"private_key"`
	Mnemonic         string `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName    string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID          string `yaml:"chain_id" json:"chain_id"`
	ContractAddress  string `yaml:"contract_address" json:"contract_address"`
}

type PipelineConfig struct {
	Model                   string `yaml:"model" json:"model"`
	DefaultStyle            string `yaml:"default_style" json:"default_style"`
	GenerationTimeoutMillis int64  `yaml:"generation_timeout_ms" json:"generation_timeout_ms"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type ArtGeneratorConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize      int64 `yaml:"batch_size" json:"batch_size"`
}

type CompletionExecutorConfig struct {
	Enabled           bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis    int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize         int64 `yaml:"batch_size" json:"batch_size"`
	MaxSubmitAttempts int64 `yaml:"max_submit_attempts" json:"max_submit_attempts"`
}

type OrphanSweeperConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	MaxAgeMillis   int64 `yaml:"max_age_ms" json:"max_age_ms"`
}
