package config

import "time"

// JobConfig is the root configuration for an ingestion run.
type JobConfig struct {
	Job         InstanceConfig    `yaml:"job"`
	API         APIConfig         `yaml:"api"`
	ObjectStore ObjectStoreConfig `yaml:"object_store"`
	Database    DatabaseConfig    `yaml:"database"`
	Ingest      IngestConfig      `yaml:"ingest"`
	Seed        SeedConfig        `yaml:"seed"`
}

// InstanceConfig identifies this job instance.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds market-data API settings.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Key            string        `yaml:"key"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxAttempts    int           `yaml:"max_attempts"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
	RetryMaxDelay  time.Duration `yaml:"retry_max_delay"`
	Cooldown       time.Duration `yaml:"cooldown"`
	OutputSize     string        `yaml:"output_size"` // "compact" or "full"
}

// ObjectStoreConfig holds the S3-compatible landing bucket settings.
// Endpoint may point at AWS, MinIO, or LocalStack.
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// DatabaseConfig holds the warehouse connection.
type DatabaseConfig struct {
	Warehouse DBConfig `yaml:"warehouse"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// IngestConfig holds per-run ingestion settings.
// An empty Symbols list means the full built-in catalog.
type IngestConfig struct {
	Symbols []string      `yaml:"symbols"`
	Pacing  time.Duration `yaml:"pacing"`
}

// SeedConfig holds reference-entity seeding settings.
type SeedConfig struct {
	Accounts   int    `yaml:"accounts"`
	Orders     int    `yaml:"orders"`
	RandomSeed uint64 `yaml:"random_seed"`
}
