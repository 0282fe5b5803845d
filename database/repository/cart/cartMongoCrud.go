package cartRepo

import (
	"context"
	"errors"

	"cabinkeep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByUserID returns the user's cart, or nil when none exists yet.
func (r *mongoCartRepo) GetByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save upserts the full cart document keyed by userId.
func (r *mongoCartRepo) Save(ctx context.Context, cart models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts)
	return err
}
