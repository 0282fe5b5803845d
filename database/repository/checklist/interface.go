package checklistRepo

import (
	"context"

	"cabinkeep/config"
	"cabinkeep/database"
	"cabinkeep/models"
	"cabinkeep/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ChecklistRepository is the durable store for cleaning-pass records.
// Lookup methods return (nil, nil) when no document matches; callers decide
// whether a miss is an error.
type ChecklistRepository interface {
	Create(ctx context.Context, rec models.ChecklistRecord) (*models.ChecklistRecord, error)
	GetByID(ctx context.Context, id string) (*models.ChecklistRecord, error)
	GetAll(ctx context.Context) ([]models.ChecklistRecord, error)
	Replace(ctx context.Context, id string, rec models.ChecklistRecord) (*models.ChecklistRecord, error)
	DeleteByID(ctx context.Context, id string) error

	// FindOpenByCabin returns the cabin's pending record, if any.
	FindOpenByCabin(ctx context.Context, cabinNumber int) (*models.ChecklistRecord, error)
	// FindPending returns every record with completed=false.
	FindPending(ctx context.Context) ([]models.ChecklistRecord, error)
}

type mongoChecklistRepo struct {
	coll *mongo.Collection
}

// NewMongoChecklistRepo returns a ChecklistRepository backed by MongoDB.
func NewMongoChecklistRepo() ChecklistRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoChecklistRepo{
		coll: db.Collection("checklists"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure checklist indexes", zap.Error(err))
	}
	return repo
}
