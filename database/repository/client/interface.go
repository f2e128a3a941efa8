// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"clinicflow/database"
	"clinicflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClientRepository interface {
	GetByID(ctx context.Context, clientID string) (*models.Client, error)
	ListActive(ctx context.Context) ([]models.Client, error)
	CountActive(ctx context.Context) (int64, error)
	ListWithSummary(ctx context.Context) ([]models.ClientSummary, error)
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
