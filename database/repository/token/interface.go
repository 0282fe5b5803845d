package tokenRepo

import (
	"context"
	"time"

	"cabinkeep/config"
	"cabinkeep/database"
	"cabinkeep/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RefreshTokenRepository stores issued refresh tokens until they are rotated
// away, revoked, or purged after expiry.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	// DeleteExpired removes tokens whose expiry is before the cutoff and
	// returns the number of deleted documents.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoRefreshTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoRefreshTokenRepo returns a RefreshTokenRepository backed by MongoDB.
func NewMongoRefreshTokenRepo() RefreshTokenRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRefreshTokenRepo{
		coll: db.Collection("refresh_tokens"),
	}
}
