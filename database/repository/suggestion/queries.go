// File: database/repository/suggestion/queries.go
package suggestionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicflow/models"
)

func (r *mongoSuggestionRepo) find(ctx context.Context, filter bson.M) ([]models.SuggestedAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suggestions []models.SuggestedAppointment
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *mongoSuggestionRepo) ListByClient(ctx context.Context, clientID string) ([]models.SuggestedAppointment, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

func (r *mongoSuggestionRepo) ListAll(ctx context.Context) ([]models.SuggestedAppointment, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoSuggestionRepo) ListPendingByClient(ctx context.Context, clientID string) ([]models.SuggestedAppointment, error) {
	return r.find(ctx, bson.M{"clientId": clientID, "status": models.SuggestionPending})
}
