// File: database/repository/suggestion/interface.go
package suggestionRepo

import (
	"context"
	"fmt"

	"clinicflow/database"
	"clinicflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SuggestionRepository interface {
	Insert(ctx context.Context, suggestion models.SuggestedAppointment) error
	ListByClient(ctx context.Context, clientID string) ([]models.SuggestedAppointment, error)
	ListAll(ctx context.Context) ([]models.SuggestedAppointment, error)
	ListPendingByClient(ctx context.Context, clientID string) ([]models.SuggestedAppointment, error)
	UpdateStatus(ctx context.Context, clientID, suggestionID, status string) error
	ExpirePendingBefore(ctx context.Context, cutoffDate string) (int64, error)
	CountsByClient(ctx context.Context) (map[string]models.SuggestionCounts, error)
}

type mongoSuggestionRepo struct {
	coll *mongo.Collection
}

// NewMongoSuggestionRepo constructs a new MongoDB SuggestionRepository.
func NewMongoSuggestionRepo() SuggestionRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &mongoSuggestionRepo{
		coll: db.Collection("suggested_appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create suggestion indexes: %v\n", err)
	}
	return repo
}
