// roster/store/upsert_lock.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// upsertLockKeyPrefix namespaces lock keys in Redis; the suffix is the
// teammate natural key.
const upsertLockKeyPrefix = "staticlock:%s"

// releaseScript deletes the lock key only while we still own it, so an
// expired lock reacquired by another writer is never deleted from under them.
var releaseScript = redis.NewScript(
	`if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`)

// UpsertLockStore serializes teammate upserts per natural key using a Redis
// SET NX lock with a TTL. The TTL bounds how long a crashed holder can block
// other writers.
type UpsertLockStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewUpsertLockStore creates and returns a new UpsertLockStore instance.
func NewUpsertLockStore(client redis.UniversalClient, ttl time.Duration) *UpsertLockStore {
	return &UpsertLockStore{
		client: client,
		ttl:    ttl,
	}
}

// Acquire takes the lock for the given natural key, retrying until the lock
// TTL has elapsed or the context is done. It returns an ownership token that
// must be passed back to Release.
func (uls *UpsertLockStore) Acquire(ctx context.Context, key string) (string, error) {
	redisKey := fmt.Sprintf(upsertLockKeyPrefix, key)
	token := uuid.NewString()
	deadline := time.Now().Add(uls.ttl)

	for {
		ok, err := uls.client.SetNX(ctx, redisKey, token, uls.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("failed to acquire upsert lock for %s: %w", key, err)
		}
		if ok {
			return token, nil
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("upsert lock for %s held past %s", key, uls.ttl)
		}
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context done while waiting for upsert lock for %s: %w", key, ctx.Err())
		case <-time.After(25 * time.Millisecond):
		}
	}
}

// Release frees the lock if the given token still owns it.
func (uls *UpsertLockStore) Release(ctx context.Context, key, token string) error {
	redisKey := fmt.Sprintf(upsertLockKeyPrefix, key)
	if err := releaseScript.Run(ctx, uls.client, []string{redisKey}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to release upsert lock for %s: %w", key, err)
	}
	return nil
}
