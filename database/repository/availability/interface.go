// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"

	"clinicflow/database"
	"clinicflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, window models.AvailabilityWindow) (string, error)
	ListActiveByClient(ctx context.Context, clientID string) ([]models.AvailabilityWindow, error)
	ListActive(ctx context.Context) ([]models.AvailabilityWindow, error)
	Deactivate(ctx context.Context, clientID, windowID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability_windows"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}
