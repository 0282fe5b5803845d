package checklistRepo

import (
	"context"
	"errors"
	"time"

	"cabinkeep/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new checklist record and returns the stored document.
func (r *mongoChecklistRepo) Create(ctx context.Context, rec models.ChecklistRecord) (*models.ChecklistRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByID returns a checklist record by its ID, or nil if absent.
func (r *mongoChecklistRepo) GetByID(ctx context.Context, id string) (*models.ChecklistRecord, error) {
	var rec models.ChecklistRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetAll returns every checklist record, newest first.
func (r *mongoChecklistRepo) GetAll(ctx context.Context) ([]models.ChecklistRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
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

// Replace overwrites the record with the given ID, preserving its identity
// and creation time. Returns nil if no record matched.
func (r *mongoChecklistRepo) Replace(ctx context.Context, id string, rec models.ChecklistRecord) (*models.ChecklistRecord, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now()

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteByID removes a checklist record. Deleting an absent record is not an
// error; the read paths already treat misses as null results.
func (r *mongoChecklistRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	return err
}
