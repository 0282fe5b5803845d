package checklistRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the checklists collection.
// The partial unique index on (cabinNumber, completed=false) backs the
// at-most-one-pending-record-per-cabin invariant at the store level, so even
// writers that bypass the serialized upsert path cannot insert a second open
// record for a cabin.
func (r *mongoChecklistRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on record ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Newest-first listing
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_idx"),
		},
		// One open record per cabin
		{
			Keys: bson.D{{Key: "cabinNumber", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("open_per_cabin_idx").
				SetPartialFilterExpression(bson.M{"completed": false}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create checklist indexes: %w", err)
	}
	return nil
}
