// File: database/repository/suggestion/aggregates.go
package suggestionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"clinicflow/models"
)

// CountsByClient groups the suggestion history per client in one pipeline
// pass, used when refreshing the roster summary after a bulk run.
func (r *mongoSuggestionRepo) CountsByClient(ctx context.Context) (map[string]models.SuggestionCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$clientId",
			"total": bson.M{"$sum": 1},
			"pending": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$status", models.SuggestionPending}}, 1, 0},
			}},
			"accepted": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$status", models.SuggestionAccepted}}, 1, 0},
			}},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate suggestion counts: %w", err)
	}
	defer cursor.Close(ctx)

	type row struct {
		ClientID string `bson:"_id"`
		Total    int    `bson:"total"`
		Pending  int    `bson:"pending"`
		Accepted int    `bson:"accepted"`
	}

	counts := make(map[string]models.SuggestionCounts)
	for cursor.Next(ctx) {
		var rec row
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode suggestion counts: %w", err)
		}
		counts[rec.ClientID] = models.SuggestionCounts{
			Total:    rec.Total,
			Pending:  rec.Pending,
			Accepted: rec.Accepted,
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
