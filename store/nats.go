package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/zeebo/xxh3"

	"github.com/expertiza/reimplementation-back-end-sub003/internal/kvutil"
	"github.com/expertiza/reimplementation-back-end-sub003/internal/logger"
	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// DefaultBucket is the KV bucket name used when the config leaves it empty.
const DefaultBucket = "review-mappings"

// NATSConfig configures the JetStream-backed mapping store.
type NATSConfig struct {
	// Bucket is the KV bucket name. Defaults to DefaultBucket.
	Bucket string `yaml:"bucket"`

	// TTL is how long mappings remain in KV (0 = no expiration). Mappings
	// are durable records; the default is no expiration.
	TTL time.Duration `yaml:"ttl"`

	// MaxRetries bounds bucket-creation retries. Defaults to 3.
	MaxRetries int `yaml:"maxRetries"`
}

// NATS is a durable MappingStore on a JetStream KeyValue bucket.
//
// Uniqueness across processes rests on kv.Create: the first writer for a key
// wins and every other concurrent writer observes the key-exists failure,
// which surfaces as types.ErrDuplicateMapping. No locking beyond that is
// needed.
//
// Keys are xxh3 hashes of the canonical mapping key, prefixed with the
// assignment hash: "<assignment-hash>.<triple-hash>". Hashing keeps
// arbitrary reviewer and team identifiers inside the KV key character set.
type NATS struct {
	kv  jetstream.KeyValue
	log types.Logger
}

var _ types.MappingStore = (*NATS)(nil)

// NATSOption configures the store.
type NATSOption func(*NATS)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log types.Logger) NATSOption {
	return func(s *NATS) {
		if log != nil {
			s.log = log
		}
	}
}

// NewNATS creates a mapping store on the given NATS connection, ensuring the
// KV bucket exists.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - nc: NATS connection with JetStream enabled
//   - cfg: Bucket configuration
//   - opts: Optional logger
//
// Returns:
//   - *NATS: Initialized store
//   - error: JetStream initialization or bucket-creation failure
func NewNATS(ctx context.Context, nc *nats.Conn, cfg NATSConfig, opts ...NATSOption) (*NATS, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("init jetstream: %w", err)
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = DefaultBucket
	}

	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket: bucket,
		TTL:    cfg.TTL,
	}, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: ensure mapping bucket: %w", types.ErrUnavailable, err)
	}

	s := &NATS{kv: kv, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Create persists the mapping with first-writer-wins semantics.
//
// Returns:
//   - error: types.ErrDuplicateMapping when the triple already exists, or a
//     wrapped types.ErrUnavailable on KV failure
func (s *NATS) Create(ctx context.Context, m types.Mapping) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode mapping %s: %w", m.Key(), err)
	}

	if _, err := s.kv.Create(ctx, s.key(m.ReviewerID, m.RevieweeID, m.Assignment), data); err != nil {
		if errors.Is(err, jetstream.ErrKeyExists) {
			return fmt.Errorf("%w: %s", types.ErrDuplicateMapping, m.Key())
		}

		return fmt.Errorf("%w: create mapping %s: %w", types.ErrUnavailable, m.Key(), err)
	}

	s.log.Debug("mapping persisted",
		"assignment", m.Assignment.String(),
		"reviewer", m.ReviewerID,
		"reviewee", m.RevieweeID,
		"round", m.Round,
	)

	return nil
}

// Exists reports whether the triple is already mapped.
func (s *NATS) Exists(ctx context.Context, reviewerID, revieweeID string, assignment types.ParentRef) (bool, error) {
	_, err := s.kv.Get(ctx, s.key(reviewerID, revieweeID, assignment))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("%w: mapping lookup: %w", types.ErrUnavailable, err)
	}

	return true, nil
}

// Delete removes the mapping including its KV history. Deleting an absent
// mapping is a no-op.
func (s *NATS) Delete(ctx context.Context, m types.Mapping) error {
	err := s.kv.Purge(ctx, s.key(m.ReviewerID, m.RevieweeID, m.Assignment))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("%w: delete mapping %s: %w", types.ErrUnavailable, m.Key(), err)
	}

	return nil
}

// CountsByReviewee returns the number of persisted mappings per reviewee for
// the assignment by scanning the assignment's key prefix.
func (s *NATS) CountsByReviewee(ctx context.Context, assignment types.ParentRef) (map[string]int, error) {
	counts := make(map[string]int)

	lister, err := s.kv.ListKeysFiltered(ctx, assignmentPrefix(assignment)+".*")
	if err != nil {
		if isNoKeysFound(err) {
			return counts, nil
		}

		return nil, fmt.Errorf("%w: list mapping keys: %w", types.ErrUnavailable, err)
	}

	for key := range lister.Keys() {
		entry, err := s.kv.Get(ctx, key)
		if err != nil {
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				continue // deleted between list and get
			}

			return nil, fmt.Errorf("%w: read mapping %s: %w", types.ErrUnavailable, key, err)
		}

		var m types.Mapping
		if err := json.Unmarshal(entry.Value(), &m); err != nil {
			s.log.Warn("skipping undecodable mapping entry", "key", key, "error", err)
			continue
		}
		counts[m.RevieweeID]++
	}

	return counts, nil
}

// key builds "<assignment-hash>.<triple-hash>" so counts can scan one
// assignment without touching others.
func (s *NATS) key(reviewerID, revieweeID string, assignment types.ParentRef) string {
	triple := xxh3.HashString(types.MappingKey(reviewerID, revieweeID, assignment))

	return fmt.Sprintf("%s.%016x", assignmentPrefix(assignment), triple)
}

func assignmentPrefix(assignment types.ParentRef) string {
	return fmt.Sprintf("%016x", xxh3.HashString(assignment.String()))
}

// isNoKeysFound matches the NATS "no keys found" condition, which may arrive
// direct or wrapped.
func isNoKeysFound(err error) bool {
	return err != nil && (errors.Is(err, jetstream.ErrNoKeysFound) ||
		err.Error() == "nats: no keys found")
}
