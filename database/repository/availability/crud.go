// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicflow/models"
)

func (r *mongoAvailabilityRepo) Create(ctx context.Context, window models.AvailabilityWindow) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if window.ID == "" {
		window.ID = uuid.New().String()
	}
	if window.CreatedAt.IsZero() {
		window.CreatedAt = time.Now()
	}
	window.Active = true

	if _, err := r.coll.InsertOne(ctx, window); err != nil {
		return "", err
	}
	return window.ID, nil
}

func (r *mongoAvailabilityRepo) ListActiveByClient(ctx context.Context, clientID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"clientId": clientID, "active": true}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *mongoAvailabilityRepo) ListActive(ctx context.Context) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

// Deactivate soft-deletes a window; windows are never hard-deleted.
func (r *mongoAvailabilityRepo) Deactivate(ctx context.Context, clientID, windowID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": windowID, "clientId": clientID}
	update := bson.M{"$set": bson.M{"active": false}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
