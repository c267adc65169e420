package service

import (
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/repository"
	"context"
	"errors"
	"strings"
	"time"
)

// --- Error Definitions ---
var (
	ErrUserIDMissing = errors.New("userId is required")
	ErrAccessDenied  = errors.New("access denied to this asset")
)

// CollectionService manages per-user private collections. Ownership is
// token-based: the client-minted userId is not authenticated, knowledge of
// it is treated as sufficient authority.
type CollectionService interface {
	// ListByUser returns the user's private assets, optionally filtered by
	// exact (case-insensitive) language name.
	ListByUser(ctx context.Context, userID, language string) ([]domain.LanguageAsset, error)
	// GetOwned returns one private asset after the ownership check.
	GetOwned(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error)
	// DeleteOwned removes one private asset after the ownership check.
	DeleteOwned(ctx context.Context, assetID, userID string) error
	// MakePublic converts a private asset to a public pending contribution.
	MakePublic(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error)
	// Count returns the size of the user's private collection.
	Count(ctx context.Context, userID string) (int64, error)
}

type collectionService struct {
	assets repository.AssetRepository
}

// NewCollectionService creates a new instance of collectionService.
func NewCollectionService(assets repository.AssetRepository) CollectionService {
	return &collectionService{assets: assets}
}

func (s *collectionService) ListByUser(ctx context.Context, userID, language string) ([]domain.LanguageAsset, error) {
	if userID == "" {
		return nil, ErrUserIDMissing
	}

	privateAssets, err := s.assets.FindByUserIDAndIsPrivate(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	if language == "" {
		return privateAssets, nil
	}

	filtered := make([]domain.LanguageAsset, 0, len(privateAssets))
	for _, asset := range privateAssets {
		if strings.EqualFold(asset.LanguageName, language) {
			filtered = append(filtered, asset)
		}
	}
	return filtered, nil
}

func (s *collectionService) GetOwned(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error) {
	return s.ownedAsset(ctx, assetID, userID)
}

func (s *collectionService) DeleteOwned(ctx context.Context, assetID, userID string) error {
	if _, err := s.ownedAsset(ctx, assetID, userID); err != nil {
		return err
	}
	return s.assets.Delete(ctx, assetID)
}

func (s *collectionService) MakePublic(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error) {
	asset, err := s.ownedAsset(ctx, assetID, userID)
	if err != nil {
		return nil, err
	}

	// Public records carry no user id; the contribution now needs admin
	// verification like any other public upload.
	asset.IsPrivate = false
	asset.ConsentGiven = true
	asset.Status = domain.StatusPending
	asset.UserID = nil
	asset.UpdatedAt = time.Now().UTC()

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *collectionService) Count(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrUserIDMissing
	}
	return s.assets.CountByUserIDAndIsPrivate(ctx, userID, true)
}

// ownedAsset runs the shared precondition ladder: blank user id, unknown
// asset, then ownership.
func (s *collectionService) ownedAsset(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error) {
	if userID == "" {
		return nil, ErrUserIDMissing
	}

	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	if !asset.OwnedBy(userID) {
		return nil, ErrAccessDenied
	}
	return asset, nil
}
