package tokenRepo

import (
	"context"
	"errors"
	"time"

	"cabinkeep/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create stores a newly issued refresh token.
func (r *mongoRefreshTokenRepo) Create(ctx context.Context, token models.RefreshToken) error {
	_, err := r.coll.InsertOne(ctx, token)
	return err
}

// GetByToken returns a stored refresh token, or nil if unknown.
func (r *mongoRefreshTokenRepo) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// DeleteByToken removes a refresh token, typically on rotation.
func (r *mongoRefreshTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteExpired removes every token that expired before the cutoff.
func (r *mongoRefreshTokenRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expires": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
