package loader

// LoadResult reports the outcome of a single batch load.
type LoadResult struct {
	Inserted int // Rows newly inserted
	Skipped  int // Rows already present (conflict on natural key)
}

// LoadMetrics accumulates outcomes across loads.
type LoadMetrics struct {
	Inserts   int64
	Conflicts int64
	Errors    int64
	Batches   int64
}
