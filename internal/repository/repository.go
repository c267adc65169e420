package repository

import (
	"bhasharakshak/preservation-app/internal/domain"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AssetRepository defines the interface for interacting with language asset data.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.LanguageAsset) error
	GetByID(ctx context.Context, id string) (*domain.LanguageAsset, error)
	Update(ctx context.Context, asset *domain.LanguageAsset) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]domain.LanguageAsset, error)
	FindByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.LanguageAsset, error)
	FindByLanguageNameContainingIgnoreCase(ctx context.Context, query string) ([]domain.LanguageAsset, error)
	FindByUserIDAndIsPrivate(ctx context.Context, userID string, isPrivate bool) ([]domain.LanguageAsset, error)
	CountByUserIDAndIsPrivate(ctx context.Context, userID string, isPrivate bool) (int64, error)
}

// HeritageRepository defines the interface for interacting with visual heritage data.
type HeritageRepository interface {
	Create(ctx context.Context, heritage *domain.VisualHeritage) error
	GetByID(ctx context.Context, id string) (*domain.VisualHeritage, error)
	FindAll(ctx context.Context) ([]domain.VisualHeritage, error)
	FindByStatus(ctx context.Context, status domain.AssetStatus) ([]domain.VisualHeritage, error)
	FindByLanguage(ctx context.Context, language string) ([]domain.VisualHeritage, error)
}
