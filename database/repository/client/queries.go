// File: database/repository/client/queries.go
package clientRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicflow/models"
)

func (r *mongoClientRepo) GetByID(ctx context.Context, clientID string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": clientID}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) ListActive(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *mongoClientRepo) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"active": true})
}

// ListWithSummary joins each active client with its active availability
// windows and suggestion history in a single pipeline.
func (r *mongoClientRepo) ListWithSummary(ctx context.Context) ([]models.ClientSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"active": true}},
		{"$lookup": bson.M{
			"from": "availability_windows",
			"let":  bson.M{"cid": "$id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$and": []bson.M{
					{"$eq": []interface{}{"$clientId", "$$cid"}},
					{"$eq": []interface{}{"$active", true}},
				}}}},
			},
			"as": "windows",
		}},
		{"$lookup": bson.M{
			"from":         "suggested_appointments",
			"localField":   "id",
			"foreignField": "clientId",
			"as":           "suggestions",
		}},
		{"$project": bson.M{
			"id":                      1,
			"name":                    1,
			"email":                   1,
			"activeAvailabilityCount": bson.M{"$size": "$windows"},
			"totalSuggestionsCount":   bson.M{"$size": "$suggestions"},
		}},
		{"$sort": bson.M{"name": 1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate client summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.ClientSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode client summaries: %w", err)
	}
	return summaries, nil
}
