package mongo

import (
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/repository"
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const heritageCollectionName = "visual_heritage"

// mongoHeritageRepository implements repository.HeritageRepository
type mongoHeritageRepository struct {
	collection *mongo.Collection
}

// NewMongoHeritageRepository creates a new VisualHeritage repository backed by MongoDB.
func NewMongoHeritageRepository(db *mongo.Database) repository.HeritageRepository {
	return &mongoHeritageRepository{
		collection: db.Collection(heritageCollectionName),
	}
}

// Create inserts a new heritage record into the database.
func (r *mongoHeritageRepository) Create(ctx context.Context, heritage *domain.VisualHeritage) error {
	if heritage.ID == "" {
		return errors.New("heritage ID is required")
	}
	_, err := r.collection.InsertOne(ctx, heritage)
	return err
}

// GetByID retrieves a heritage record by its ID.
func (r *mongoHeritageRepository) GetByID(ctx context.Context, id string) (*domain.VisualHeritage, error) {
	var heritage domain.VisualHeritage
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&heritage)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &heritage, nil
}

// FindAll retrieves every heritage record, newest first.
func (r *mongoHeritageRepository) FindAll(ctx context.Context) ([]domain.VisualHeritage, error) {
	return r.find(ctx, bson.M{})
}

// FindByStatus retrieves heritage records in the given curation state.
func (r *mongoHeritageRepository) FindByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.VisualHeritage, error) {
	return r.find(ctx, bson.M{"status": status})
}

// FindByLanguage retrieves heritage records whose original description is in
// the given language.
func (r *mongoHeritageRepository) FindByLanguage(ctx context.Context, language string) ([]domain.VisualHeritage, error) {
	return r.find(ctx, bson.M{"language": language})
}

func (r *mongoHeritageRepository) find(ctx context.Context, filter bson.M) ([]domain.VisualHeritage, error) {
	var records []domain.VisualHeritage

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// EnsureHeritageIndexes creates necessary indexes for the visual_heritage collection.
func EnsureHeritageIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "language", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
