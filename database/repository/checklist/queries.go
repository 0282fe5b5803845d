package checklistRepo

import (
	"context"
	"errors"

	"cabinkeep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindOpenByCabin returns the pending record for a cabin, or nil when the
// cabin has no open checklist.
func (r *mongoChecklistRepo) FindOpenByCabin(ctx context.Context, cabinNumber int) (*models.ChecklistRecord, error) {
	var rec models.ChecklistRecord
	err := r.coll.FindOne(ctx, bson.M{"cabinNumber": cabinNumber, "completed": false}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindPending returns every record with completed=false.
func (r *mongoChecklistRepo) FindPending(ctx context.Context) ([]models.ChecklistRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"completed": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.ChecklistRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
