// roster/service/teammate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/tabajaradev/static-roster/shared/models"
)

// ErrStaticNotFound is returned when a teammate upsert references a Static
// GUID with no matching group.
var ErrStaticNotFound = errors.New("static not found")

// TeammateStore is the subset of the teammate persistence layer the services use.
type TeammateStore interface {
	Upsert(ctx context.Context, tm *models.StaticTeammate) (bool, error)
	ListByStaticGUID(ctx context.Context, guid string) ([]models.StaticTeammate, error)
}

// UpsertLocker serializes upserts per teammate natural key. Acquire returns
// an ownership token to pass back to Release.
type UpsertLocker interface {
	Acquire(ctx context.Context, key string) (string, error)
	Release(ctx context.Context, key, token string) error
}

// TeammateService encapsulates the business logic for teammate records.
type TeammateService struct {
	teammates           TeammateStore
	statics             StaticStore
	locker              UpsertLocker // nil leaves the upsert read-then-write unserialized
	enforceStaticExists bool
}

// NewTeammateService creates a new TeammateService instance. Passing a nil
// locker preserves the historical behavior where two concurrent first-upserts
// for the same (name, staticGuid) may both insert.
func NewTeammateService(ts TeammateStore, ss StaticStore, locker UpsertLocker, enforceStaticExists bool) *TeammateService {
	return &TeammateService{
		teammates:           ts,
		statics:             ss,
		locker:              locker,
		enforceStaticExists: enforceStaticExists,
	}
}

// Upsert writes the teammate keyed by (Name, StaticGUID), verifying the
// referenced Static first when configured to. Returns true when a new record
// was inserted, false when an existing one was updated.
func (ts *TeammateService) Upsert(ctx context.Context, tm *models.StaticTeammate) (bool, error) {
	if ts.enforceStaticExists {
		exists, err := ts.statics.ExistsByGUID(ctx, tm.StaticGUID)
		if err != nil {
			return false, fmt.Errorf("service failed to verify static %s: %w", tm.StaticGUID, err)
		}
		if !exists {
			return false, ErrStaticNotFound
		}
	}

	if ts.locker != nil {
		key := tm.StaticGUID + ":" + tm.Name
		token, err := ts.locker.Acquire(ctx, key)
		if err != nil {
			return false, fmt.Errorf("service failed to serialize upsert for %s: %w", key, err)
		}
		defer func() {
			if err := ts.locker.Release(ctx, key, token); err != nil {
				log.Printf("WARN: Failed to release upsert lock for %s: %v", key, err)
			}
		}()
	}

	created, err := ts.teammates.Upsert(ctx, tm)
	if err != nil {
		return false, fmt.Errorf("service failed to upsert teammate %s in static %s: %w", tm.Name, tm.StaticGUID, err)
	}
	return created, nil
}

// ListByStatic retrieves every teammate record for the given static GUID.
func (ts *TeammateService) ListByStatic(ctx context.Context, guid string) ([]models.StaticTeammate, error) {
	teammates, err := ts.teammates.ListByStaticGUID(ctx, guid)
	if err != nil {
		return nil, fmt.Errorf("service failed to list teammates for static %s: %w", guid, err)
	}
	return teammates, nil
}
