package cartRepo

import (
	"context"

	"cabinkeep/config"
	"cabinkeep/database"
	"cabinkeep/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository persists one supply-request list per user.
// GetByUserID returns (nil, nil) when the user has no cart yet; creation is
// lazy and happens on the first Save.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
}

type mongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo returns a CartRepository backed by MongoDB.
func NewMongoCartRepo() CartRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCartRepo{
		coll: db.Collection("carts"),
	}
}
