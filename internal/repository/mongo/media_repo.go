package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/repository"
)

const mediaCollectionName = "media"

// mongoMediaRepository implements repository.MediaRepository using MongoDB.
// Media rows reference users and items by id only; no foreign keys exist and
// rows with dangling item references are kept.
type mongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new instance of mongoMediaRepository.
func NewMongoMediaRepository(db *mongo.Database) repository.MediaRepository {
	return &mongoMediaRepository{
		collection: db.Collection(mediaCollectionName),
	}
}

// List retrieves every media record, oldest first.
func (r *mongoMediaRepository) List(ctx context.Context) ([]domain.Media, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []domain.Media
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, cursor.Err()
}

// Create inserts a new media record, assigning an identifier and timestamp.
func (r *mongoMediaRepository) Create(ctx context.Context, media *domain.Media) (string, error) {
	if media.URL == "" || !media.Kind.Valid() {
		return "", errors.New("media url and type are required")
	}

	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	media.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, media); err != nil {
		return "", err
	}
	return media.ID, nil
}

// GetByID retrieves a media record by identifier.
func (r *mongoMediaRepository) GetByID(ctx context.Context, id string) (*domain.Media, error) {
	var media domain.Media
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

// Delete removes a media record. Deleting an id that is already gone is a
// no-op, matching the HTTP surface which reports success either way.
func (r *mongoMediaRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnsureMediaIndexes creates necessary indexes for the media collection.
// Call this once during application startup.
func EnsureMediaIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "itemId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
