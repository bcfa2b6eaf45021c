package kvutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"

	patest "github.com/expertiza/reimplementation-back-end-sub003/testing"
)

func TestEnsureBucket(t *testing.T) {
	_, nc := patest.StartEmbeddedNATS(t)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	t.Run("creates bucket on first try", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		kv, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{
			Bucket:  "ensure-create",
			History: 1,
		}, 3)
		require.NoError(t, err)
		require.NotNil(t, kv)
	})

	t.Run("opens existing bucket", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg := jetstream.KeyValueConfig{Bucket: "ensure-existing", History: 1}

		first, err := EnsureBucket(ctx, js, cfg, 3)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := EnsureBucket(ctx, js, cfg, 3)
		require.NoError(t, err)
		require.NotNil(t, second)
	})

	t.Run("concurrent creates of same bucket all succeed", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		const numWorkers = 5
		cfg := jetstream.KeyValueConfig{Bucket: "ensure-concurrent", History: 1}

		var wg sync.WaitGroup
		errChan := make(chan error, numWorkers)

		for i := 0; i < numWorkers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				kv, err := EnsureBucket(ctx, js, cfg, 5)
				if err != nil {
					errChan <- err
					return
				}
				if kv == nil {
					errChan <- context.Canceled
				}
			}()
		}

		wg.Wait()
		close(errChan)

		for err := range errChan {
			require.NoError(t, err)
		}
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{
			Bucket:  "ensure-cancelled",
			History: 1,
		}, 3)
		require.Error(t, err)
	})

	t.Run("maxRetries below one defaults", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		kv, err := EnsureBucket(ctx, js, jetstream.KeyValueConfig{
			Bucket:  "ensure-default-retries",
			History: 1,
		}, 0)
		require.NoError(t, err)
		require.NotNil(t, kv)
	})
}
