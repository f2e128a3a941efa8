// File: database/repository/suggestion/crud.go
package suggestionRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicflow/models"
)

func (r *mongoSuggestionRepo) Insert(ctx context.Context, suggestion models.SuggestedAppointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if suggestion.ID == "" {
		suggestion.ID = uuid.New().String()
	}
	if suggestion.Status == "" {
		suggestion.Status = models.SuggestionPending
	}
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, suggestion)
	return err
}

func (r *mongoSuggestionRepo) UpdateStatus(ctx context.Context, clientID, suggestionID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": suggestionID, "clientId": clientID, "status": models.SuggestionPending}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"resolvedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ExpirePendingBefore marks pending suggestions whose slot date precedes the
// cutoff as expired, returning the number of transitions.
func (r *mongoSuggestionRepo) ExpirePendingBefore(ctx context.Context, cutoffDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.SuggestionPending,
		"date":   bson.M{"$lt": cutoffDate},
	}
	update := bson.M{"$set": bson.M{
		"status":     models.SuggestionExpired,
		"resolvedAt": time.Now(),
	}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
