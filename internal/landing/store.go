package landing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fintrade/market-ingest/internal/config"
	"github.com/fintrade/market-ingest/internal/model"
)

// ErrNotFound marks a read of a key that was never landed.
var ErrNotFound = errors.New("object not found")

// Store lands raw payloads and extracts in the object bucket.
type Store struct {
	client *minio.Client
	bucket string
	region string
	logger *slog.Logger
}

// New creates a Store against the configured S3-compatible endpoint.
func New(cfg config.ObjectStoreConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return &Store{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
	}, nil
}

// EnsureBucket creates the landing bucket if it does not already exist.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}

	s.logger.Info("created landing bucket", "bucket", s.bucket)
	return nil
}

// PutRaw lands the exact payload bytes for a symbol and date and returns the
// object key.
func (s *Store) PutRaw(ctx context.Context, symbol string, date time.Time, payload []byte, runID string) (string, error) {
	key := RawJSONKey(symbol, date)

	opts := minio.PutObjectOptions{
		ContentType:  "application/json",
		UserMetadata: map[string]string{"Run-Id": runID},
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(payload), int64(len(payload)), opts); err != nil {
		return "", fmt.Errorf("put raw %s: %w", key, err)
	}

	s.logger.Debug("landed raw payload", "key", key, "bytes", len(payload))
	return key, nil
}

// PutExtract encodes price records as Parquet and lands them beside the raw
// payload. It returns the object key.
func (s *Store) PutExtract(ctx context.Context, symbol string, date time.Time, records []model.PriceRecord, runID string) (string, error) {
	key := ExtractKey(symbol, date)

	data, err := EncodeParquet(records)
	if err != nil {
		return "", fmt.Errorf("encode extract %s: %w", key, err)
	}

	opts := minio.PutObjectOptions{
		ContentType:  "application/octet-stream",
		UserMetadata: map[string]string{"Run-Id": runID},
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return "", fmt.Errorf("put extract %s: %w", key, err)
	}

	s.logger.Debug("landed extract", "key", key, "rows", len(records), "bytes", len(data))
	return key, nil
}

// GetRaw reads back the raw payload landed for a symbol and date. It returns
// an error wrapping ErrNotFound when the key does not exist.
func (s *Store) GetRaw(ctx context.Context, symbol string, date time.Time) ([]byte, error) {
	key := RawJSONKey(symbol, date)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get raw %s: %w", key, err)
	}
	defer obj.Close()

	// GetObject is lazy, so a missing key only surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("get raw %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("get raw %s: %w", key, err)
	}

	return data, nil
}

// ListRawDates returns the dates with a landed raw payload for a symbol,
// ascending. Keys that do not parse are skipped with a warning.
func (s *Store) ListRawDates(ctx context.Context, symbol string) ([]time.Time, error) {
	prefix := rawJSONSymbolPrefix(symbol)

	var dates []time.Time
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, obj.Err)
		}

		_, date, err := ParseRawJSONKey(obj.Key)
		if err != nil {
			s.logger.Warn("skipping unrecognized landing key", "key", obj.Key, "error", err)
			continue
		}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
