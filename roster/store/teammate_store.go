// roster/store/teammate_store.go
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tabajaradev/static-roster/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TeammateStore represents the MongoDB data store for StaticTeammate records.
type TeammateStore struct {
	collection *mongo.Collection
}

// NewTeammateStore creates a new TeammateStore instance.
func NewTeammateStore(collection *mongo.Collection) *TeammateStore {
	return &TeammateStore{
		collection: collection,
	}
}

// Upsert writes the teammate keyed by its natural key (Name, StaticGUID).
// An existing record keeps its document id and CreationDate and has all
// other fields overwritten; otherwise a fresh record is inserted with both
// timestamps set. Returns true when a new record was inserted.
//
// The read-then-write sequence is not atomic; callers that need the natural
// key to stay unique under concurrent writes serialize through the upsert
// lock at the service layer.
func (ts *TeammateStore) Upsert(ctx context.Context, tm *models.StaticTeammate) (bool, error) {
	filter := bson.M{
		fieldName:       tm.Name,
		fieldStaticGUID: tm.StaticGUID,
	}

	var existing bson.M
	err := ts.collection.FindOne(ctx, filter).Decode(&existing)
	now := time.Now().UTC()

	if err == mongo.ErrNoDocuments {
		if _, err := ts.collection.InsertOne(ctx, teammateInsertDocument(tm, now)); err != nil {
			return false, fmt.Errorf("failed to insert teammate %s in static %s: %w", tm.Name, tm.StaticGUID, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up teammate %s in static %s: %w", tm.Name, tm.StaticGUID, err)
	}

	update := bson.M{"$set": teammateUpdateDocument(tm, now)}
	if _, err := ts.collection.UpdateOne(ctx, bson.M{"_id": existing["_id"]}, update); err != nil {
		return false, fmt.Errorf("failed to update teammate %s in static %s: %w", tm.Name, tm.StaticGUID, err)
	}
	return false, nil
}

// teammateInsertDocument assembles the document for a first insert: both
// timestamps stamped to the same instant.
func teammateInsertDocument(tm *models.StaticTeammate, now time.Time) bson.M {
	doc := teammateToDocument(tm)
	doc[fieldCreationDate] = now
	doc[fieldLastUpdatedDate] = now
	return doc
}

// teammateUpdateDocument assembles the $set document for an update. It never
// carries CreationDate, so the existing record's value survives the write.
func teammateUpdateDocument(tm *models.StaticTeammate, now time.Time) bson.M {
	doc := teammateToDocument(tm)
	doc[fieldLastUpdatedDate] = now
	return doc
}

// ListByStaticGUID retrieves every teammate record belonging to the given
// static, decoded through the entity mapper. Returns an empty slice, not nil,
// when nothing matches.
func (ts *TeammateStore) ListByStaticGUID(ctx context.Context, guid string) ([]models.StaticTeammate, error) {
	cursor, err := ts.collection.Find(ctx, bson.M{fieldStaticGUID: guid})
	if err != nil {
		return nil, fmt.Errorf("failed to find teammates for static %s: %w", guid, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode teammates for static %s: %w", guid, err)
	}

	teammates := make([]models.StaticTeammate, 0, len(docs))
	for _, doc := range docs {
		teammates = append(teammates, teammateFromDocument(doc))
	}
	return teammates, nil
}
