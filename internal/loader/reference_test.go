package loader

import (
	"context"
	"testing"
)

func TestReferenceLoader_EmptyBatches(t *testing.T) {
	// Note: We can't test actual DB writes without a database.
	// Empty input returns before touching the pool.
	l := NewReferenceLoader(nil, nil)

	if _, err := l.LoadStocks(context.Background(), nil); err != nil {
		t.Errorf("LoadStocks() error = %v", err)
	}
	if _, err := l.LoadAccounts(context.Background(), nil); err != nil {
		t.Errorf("LoadAccounts() error = %v", err)
	}
	if _, err := l.LoadOrders(context.Background(), nil); err != nil {
		t.Errorf("LoadOrders() error = %v", err)
	}
	if _, err := l.LoadTrades(context.Background(), nil); err != nil {
		t.Errorf("LoadTrades() error = %v", err)
	}

	stats := l.Stats()
	if stats.Batches != 0 {
		t.Errorf("Batches = %d, want 0 for empty loads", stats.Batches)
	}
}
