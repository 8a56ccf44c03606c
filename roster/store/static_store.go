// roster/store/static_store.go
package store

import (
	"context"
	"fmt"

	"github.com/tabajaradev/static-roster/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaticStore represents the MongoDB data store for Static group records.
type StaticStore struct {
	collection *mongo.Collection
}

// NewStaticStore creates a new StaticStore instance.
func NewStaticStore(collection *mongo.Collection) *StaticStore {
	return &StaticStore{
		collection: collection,
	}
}

// Create inserts a new Static document. The document id is store-assigned;
// the application-level GUID lives in its own field.
func (ss *StaticStore) Create(ctx context.Context, st *models.Static) error {
	doc := bson.M{
		fieldName:            st.Name,
		fieldStaticGUID:      st.GUID,
		fieldCreationDate:    st.CreationDate,
		fieldLastUpdatedDate: st.LastUpdatedDate,
	}
	if _, err := ss.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create static %s: %w", st.GUID, err)
	}
	return nil
}

// ExistsByGUID reports whether a Static with the given GUID exists. Pure
// lookup, no side effects.
func (ss *StaticStore) ExistsByGUID(ctx context.Context, guid string) (bool, error) {
	err := ss.collection.FindOne(ctx, bson.M{fieldStaticGUID: guid}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up static %s: %w", guid, err)
	}
	return true, nil
}
