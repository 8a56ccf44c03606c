// roster/service/static_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tabajaradev/static-roster/shared/models"
)

// StaticStore is the subset of the static persistence layer the services use.
type StaticStore interface {
	Create(ctx context.Context, st *models.Static) error
	ExistsByGUID(ctx context.Context, guid string) (bool, error)
}

// StaticService encapsulates the business logic for Static groups.
type StaticService struct {
	statics StaticStore
}

// NewStaticService creates a new StaticService instance.
func NewStaticService(ss StaticStore) *StaticService {
	return &StaticService{
		statics: ss,
	}
}

// CreateStatic generates a fresh GUID for the group, stamps both timestamps
// to the current UTC instant and inserts the record. Returns the generated
// GUID. Statics are never updated or deleted after creation.
func (ss *StaticService) CreateStatic(ctx context.Context, name string) (string, error) {
	guid := uuid.NewString()
	now := time.Now().UTC()

	st := &models.Static{
		Name:            name,
		GUID:            guid,
		CreationDate:    now,
		LastUpdatedDate: now,
	}
	if err := ss.statics.Create(ctx, st); err != nil {
		return "", fmt.Errorf("service failed to create static: %w", err)
	}
	return guid, nil
}
