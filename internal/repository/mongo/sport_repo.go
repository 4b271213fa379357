// internal/repository/mongo/sport_repo.go
package mongo

import (
	"context"
	"errors"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sportCollectionName = "sports"

// mongoSportRepository implements repository.SportRepository
type mongoSportRepository struct {
	collection *mongo.Collection
}

// NewMongoSportRepository creates a new Sport repository backed by MongoDB.
func NewMongoSportRepository(db *mongo.Database) repository.SportRepository {
	return &mongoSportRepository{
		collection: db.Collection(sportCollectionName),
	}
}

// Create inserts a new sport into the catalog.
func (r *mongoSportRepository) Create(ctx context.Context, sport *domain.Sport) (primitive.ObjectID, error) {
	if sport.Name == "" || sport.Slug == "" {
		return primitive.NilObjectID, errors.New("sport name and slug are required")
	}
	sport.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, sport)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a sport by its ID.
func (r *mongoSportRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Sport, error) {
	var sport domain.Sport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sport, nil
}

// GetBySlug retrieves a sport by its slug identifier.
func (r *mongoSportRepository) GetBySlug(ctx context.Context, slug string) (*domain.Sport, error) {
	var sport domain.Sport
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&sport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sport, nil
}

// List returns the full sport catalog sorted by name.
func (r *mongoSportRepository) List(ctx context.Context) ([]domain.Sport, error) {
	var sports []domain.Sport
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sports); err != nil {
		return nil, err
	}
	return sports, nil
}

// EnsureSportIndexes creates necessary indexes. Call during startup.
func EnsureSportIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
