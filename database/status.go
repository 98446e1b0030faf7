package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventsnap/models"
)

// StatusRepository records client liveness pings.
type StatusRepository interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheck, error)
	FindAll(ctx context.Context) ([]models.StatusCheck, error)
}

type MongoStatusRepository struct {
	coll *mongo.Collection
}

func NewMongoStatusRepository(client *mongo.Client, dbName string) *MongoStatusRepository {
	return &MongoStatusRepository{coll: client.Database(dbName).Collection("status_checks")}
}

func (r *MongoStatusRepository) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (r *MongoStatusRepository) FindAll(ctx context.Context) ([]models.StatusCheck, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
