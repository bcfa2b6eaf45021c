// Package kvutil provides utilities for working with NATS JetStream KeyValue
// buckets.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// EnsureBucket creates or opens a KV bucket with retry logic.
//
// Handles the race where multiple engine instances create the same bucket
// concurrently, retrying transient failures with exponential backoff.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - config: KV bucket configuration
//   - maxRetries: Maximum attempts (values below 1 default to 3)
//
// Returns:
//   - jetstream.KeyValue: The bucket instance
//   - error: The last error after all retries
func EnsureBucket(ctx context.Context, js jetstream.JetStream, config jetstream.KeyValueConfig, maxRetries int) (jetstream.KeyValue, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		kv, err := js.CreateKeyValue(ctx, config)
		if err == nil {
			return kv, nil
		}

		if errors.Is(err, jetstream.ErrBucketExists) {
			kv, err := js.KeyValue(ctx, config.Bucket)
			if err == nil {
				return kv, nil
			}
			lastErr = fmt.Errorf("bucket exists but failed to open: %w", err)
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		}

		// Exponential backoff: 100ms, 200ms, 400ms, ...
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		case <-time.After(time.Duration(100<<attempt) * time.Millisecond):
		}
	}

	return nil, fmt.Errorf("failed to ensure KV bucket %q after %d attempts: %w", config.Bucket, maxRetries, lastErr)
}
