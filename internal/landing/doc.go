// Package landing persists raw API payloads and columnar extracts in the
// S3-compatible landing bucket.
//
// Key layout (hive-style partitions):
//
//	raw/json/symbol={SYM}/date={YYYY-MM-DD}.json
//	raw/parquet/symbol={SYM}/date={YYYY-MM-DD}.parquet
//
// Raw objects are the replay source of truth: a warehouse load can always be
// rebuilt from them without spending API quota. Re-running a day rewrites
// the same keys with identical content.
package landing
