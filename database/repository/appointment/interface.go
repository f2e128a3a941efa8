// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"fmt"

	"clinicflow/database"
	"clinicflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository reads scheduled appointments. The suggestion engine
// only ever consumes them as an exclusion set.
type AppointmentRepository interface {
	ListByClientInRange(ctx context.Context, clientID, startDate, endDate string) ([]models.ExistingAppointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}
