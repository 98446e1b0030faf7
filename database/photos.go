package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eventsnap/models"
)

// ErrNoRecord is returned when a lookup or delete matches no document.
var ErrNoRecord = errors.New("no such record")

// PhotoRepository is the durable store of photo metadata.
type PhotoRepository interface {
	Insert(ctx context.Context, photo *models.Photo) error
	FindAll(ctx context.Context) ([]models.Photo, error)
	FindByID(ctx context.Context, id string) (*models.Photo, error)
	Delete(ctx context.Context, id string) error
}

// MongoPhotoRepository keeps photo records in the "photos" collection,
// keyed by the photo UUID as _id.
type MongoPhotoRepository struct {
	coll *mongo.Collection
}

func NewMongoPhotoRepository(client *mongo.Client, dbName string) *MongoPhotoRepository {
	return &MongoPhotoRepository{coll: client.Database(dbName).Collection("photos")}
}

func (r *MongoPhotoRepository) Insert(ctx context.Context, photo *models.Photo) error {
	_, err := r.coll.InsertOne(ctx, photo)
	return err
}

// FindAll returns every record, newest upload first.
func (r *MongoPhotoRepository) FindAll(ctx context.Context) ([]models.Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *MongoPhotoRepository) FindByID(ctx context.Context, id string) (*models.Photo, error) {
	var photo models.Photo
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *MongoPhotoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}
