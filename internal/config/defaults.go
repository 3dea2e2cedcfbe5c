package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL        = "https://www.alphavantage.co"
	DefaultAPIKey         = "demo"
	DefaultAPITimeout     = 30 * time.Second
	DefaultMaxAttempts    = 3
	DefaultRetryBaseDelay = 4 * time.Second
	DefaultRetryMaxDelay  = 60 * time.Second
	DefaultCooldown       = 65 * time.Second
	DefaultOutputSize     = "compact"
	DefaultEndpoint       = "s3.amazonaws.com"
	DefaultRegion         = "us-east-1"
	DefaultBucket         = "fintrade-raw"
	DefaultAccessKey      = "test"
	DefaultSecretKey      = "test"
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 4
	DefaultMinConns       = 1
	DefaultPacing         = 12 * time.Second
	DefaultSeedAccounts   = 50
	DefaultSeedOrders     = 500
	DefaultRandomSeed     = 42
)

func (c *JobConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Key == "" {
		c.API.Key = DefaultAPIKey
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxAttempts == 0 {
		c.API.MaxAttempts = DefaultMaxAttempts
	}
	if c.API.RetryBaseDelay == 0 {
		c.API.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if c.API.RetryMaxDelay == 0 {
		c.API.RetryMaxDelay = DefaultRetryMaxDelay
	}
	if c.API.Cooldown == 0 {
		c.API.Cooldown = DefaultCooldown
	}
	if c.API.OutputSize == "" {
		c.API.OutputSize = DefaultOutputSize
	}

	// Object store defaults (LocalStack-friendly credentials)
	if c.ObjectStore.Endpoint == "" {
		c.ObjectStore.Endpoint = DefaultEndpoint
	}
	if c.ObjectStore.Region == "" {
		c.ObjectStore.Region = DefaultRegion
	}
	if c.ObjectStore.Bucket == "" {
		c.ObjectStore.Bucket = DefaultBucket
	}
	if c.ObjectStore.AccessKey == "" {
		c.ObjectStore.AccessKey = DefaultAccessKey
	}
	if c.ObjectStore.SecretKey == "" {
		c.ObjectStore.SecretKey = DefaultSecretKey
	}

	// Database defaults
	applyDBDefaults(&c.Database.Warehouse)

	// Ingest defaults
	if c.Ingest.Pacing == 0 {
		c.Ingest.Pacing = DefaultPacing
	}

	// Seed defaults
	if c.Seed.Accounts == 0 {
		c.Seed.Accounts = DefaultSeedAccounts
	}
	if c.Seed.Orders == 0 {
		c.Seed.Orders = DefaultSeedOrders
	}
	if c.Seed.RandomSeed == 0 {
		c.Seed.RandomSeed = DefaultRandomSeed
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
