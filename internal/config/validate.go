package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *JobConfig) Validate() error {
	if c.Job.ID == "" {
		return errors.New("job.id is required")
	}

	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Key == "" {
		return errors.New("api.key is required")
	}
	if c.API.MaxAttempts < 1 {
		return errors.New("api.max_attempts must be >= 1")
	}
	if c.API.OutputSize != "compact" && c.API.OutputSize != "full" {
		return fmt.Errorf("api.output_size must be %q or %q, got %q", "compact", "full", c.API.OutputSize)
	}

	if c.ObjectStore.Endpoint == "" {
		return errors.New("object_store.endpoint is required")
	}
	if c.ObjectStore.Bucket == "" {
		return errors.New("object_store.bucket is required")
	}

	if err := c.Database.Warehouse.validate("database.warehouse"); err != nil {
		return err
	}

	if c.Ingest.Pacing < 0 {
		return errors.New("ingest.pacing cannot be negative")
	}

	if c.Seed.Accounts < 1 {
		return errors.New("seed.accounts must be >= 1")
	}
	if c.Seed.Orders < 1 {
		return errors.New("seed.orders must be >= 1")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
