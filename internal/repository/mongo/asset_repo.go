package mongo

import (
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/repository"
	"context"
	"errors"
	"log"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assetCollectionName = "assets"

// mongoAssetRepository implements repository.AssetRepository
type mongoAssetRepository struct {
	collection *mongo.Collection
}

// NewMongoAssetRepository creates a new LanguageAsset repository backed by MongoDB.
func NewMongoAssetRepository(db *mongo.Database) repository.AssetRepository {
	return &mongoAssetRepository{
		collection: db.Collection(assetCollectionName),
	}
}

// Create inserts a new asset into the database. The caller is responsible
// for minting AssetID and setting timestamps.
func (r *mongoAssetRepository) Create(ctx context.Context, asset *domain.LanguageAsset) error {
	if asset.AssetID == "" {
		return errors.New("asset ID is required")
	}
	_, err := r.collection.InsertOne(ctx, asset)
	return err
}

// GetByID retrieves an asset by its ID.
func (r *mongoAssetRepository) GetByID(ctx context.Context, id string) (*domain.LanguageAsset, error) {
	var asset domain.LanguageAsset
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// Update replaces the stored document for the asset. UpdatedAt must already
// be bumped by the caller; all fields are written, including ones cleared
// to nil (userId after a make-public transition).
func (r *mongoAssetRepository) Update(ctx context.Context, asset *domain.LanguageAsset) error {
	if asset.AssetID == "" {
		return errors.New("asset ID is required for update")
	}

	filter := bson.M{"_id": asset.AssetID}
	result, err := r.collection.ReplaceOne(ctx, filter, asset)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an asset by ID.
func (r *mongoAssetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ExistsByID reports whether an asset with the given ID exists.
func (r *mongoAssetRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll retrieves every asset, newest first.
func (r *mongoAssetRepository) FindAll(ctx context.Context) ([]domain.LanguageAsset, error) {
	return r.find(ctx, bson.M{})
}

// FindByStatus retrieves assets in the given curation state.
func (r *mongoAssetRepository) FindByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.LanguageAsset, error) {
	return r.find(ctx, bson.M{"status": status})
}

// FindByLanguageNameContainingIgnoreCase retrieves assets whose language name
// contains the query as a case-insensitive substring.
func (r *mongoAssetRepository) FindByLanguageNameContainingIgnoreCase(ctx context.Context, query string) ([]domain.LanguageAsset, error) {
	filter := bson.M{"languageName": bson.M{
		"$regex":   regexp.QuoteMeta(query),
		"$options": "i",
	}}
	return r.find(ctx, filter)
}

// FindByUserIDAndIsPrivate retrieves assets owned by the given user with the
// given privacy flag. Backed by the (userId, isPrivate) index.
func (r *mongoAssetRepository) FindByUserIDAndIsPrivate(ctx context.Context, userID string, isPrivate bool) ([]domain.LanguageAsset, error) {
	return r.find(ctx, bson.M{"userId": userID, "isPrivate": isPrivate})
}

// CountByUserIDAndIsPrivate counts assets owned by the given user with the
// given privacy flag.
func (r *mongoAssetRepository) CountByUserIDAndIsPrivate(ctx context.Context, userID string, isPrivate bool) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID, "isPrivate": isPrivate})
}

func (r *mongoAssetRepository) find(ctx context.Context, filter bson.M) ([]domain.LanguageAsset, error) {
	var assets []domain.LanguageAsset

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

// EnsureAssetIndexes creates necessary indexes for the assets collection.
func EnsureAssetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Pending queue and verified search filter on status
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
		{
			// Keyword search on language name
			Keys:    bson.D{{Key: "languageName", Value: 1}},
			Options: options.Index(),
		},
		{
			// Private collection lookups
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isPrivate", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
