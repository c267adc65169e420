package service

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// --- Error Definitions ---
var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrNoTranscript  = errors.New("No transcript available")
)

// Each clip is treated as a standard-length recording when estimating
// archive hours.
const secondsPerClip = 10.0

// LanguageCount is one entry of the stats distribution.
type LanguageCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Stats is the aggregate statistics payload.
type Stats struct {
	TotalAssets          int64            `json:"totalAssets"`
	TotalHours           string           `json:"totalHours"`
	LanguageCount        int              `json:"languageCount"`
	LanguageDistribution map[string]int64 `json:"languageDistribution"`
	Distribution         []LanguageCount  `json:"distribution"`
}

// CityStats is one city group of the geographic rollup. Coordinates come
// from the first record seen for the group that carried both.
type CityStats struct {
	City            string   `json:"city"`
	Region          string   `json:"region"`
	Count           int      `json:"count"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	PrimaryLanguage string   `json:"primaryLanguage"`
}

// MapStats is the geographic rollup payload.
type MapStats struct {
	Cities      []CityStats `json:"cities"`
	TotalCities int         `json:"totalCities"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

// CurationService covers the public query surface and admin curation actions.
// Admin authentication happens at the API boundary; these methods assume it
// already passed.
type CurationService interface {
	// Search lists assets matching the optional language-name query.
	// Unless includeAll, only verified public assets are returned.
	Search(ctx context.Context, query string, includeAll bool) ([]domain.LanguageAsset, error)
	// PendingQueue returns public assets awaiting verification.
	PendingQueue(ctx context.Context) ([]domain.LanguageAsset, error)
	// SaveTranslation stores the manual English translation and marks the
	// asset verified.
	SaveTranslation(ctx context.Context, assetID, englishTranslation string) (*domain.LanguageAsset, error)
	// DeleteAsset removes an asset record.
	DeleteAsset(ctx context.Context, assetID string) error
	// AutoTranslate returns an AI translation of the asset's transcript.
	AutoTranslate(ctx context.Context, assetID, targetLang string) (string, error)
	// Synthesize returns base64 audio for the text.
	Synthesize(ctx context.Context, text, lang string) (string, error)
	Stats(ctx context.Context) (*Stats, error)
	MapStats(ctx context.Context) (*MapStats, error)
}

type curationService struct {
	assets repository.AssetRepository
	ai     ai.Service
}

// NewCurationService creates a new instance of curationService.
func NewCurationService(assets repository.AssetRepository, aiService ai.Service) CurationService {
	return &curationService{
		assets: assets,
		ai:     aiService,
	}
}

func (s *curationService) Search(ctx context.Context, query string, includeAll bool) ([]domain.LanguageAsset, error) {
	var results []domain.LanguageAsset
	var err error

	if query == "" {
		results, err = s.assets.FindAll(ctx)
	} else {
		results, err = s.assets.FindByLanguageNameContainingIgnoreCase(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	if includeAll {
		return results, nil
	}

	// Public view: verified, non-private only.
	filtered := make([]domain.LanguageAsset, 0, len(results))
	for _, asset := range results {
		if asset.Status == domain.StatusVerified && !asset.IsPrivate {
			filtered = append(filtered, asset)
		}
	}
	return filtered, nil
}

func (s *curationService) PendingQueue(ctx context.Context) ([]domain.LanguageAsset, error) {
	pending, err := s.assets.FindByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	// Private assets can never be pending, but keep them out of the public
	// review queue regardless.
	publicPending := make([]domain.LanguageAsset, 0, len(pending))
	for _, asset := range pending {
		if !asset.IsPrivate {
			publicPending = append(publicPending, asset)
		}
	}
	return publicPending, nil
}

func (s *curationService) SaveTranslation(ctx context.Context, assetID, englishTranslation string) (*domain.LanguageAsset, error) {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	asset.EnglishTranslation = &englishTranslation
	asset.Status = domain.StatusVerified
	asset.UpdatedAt = time.Now().UTC()

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *curationService) DeleteAsset(ctx context.Context, assetID string) error {
	exists, err := s.assets.ExistsByID(ctx, assetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetNotFound
	}
	return s.assets.Delete(ctx, assetID)
}

func (s *curationService) AutoTranslate(ctx context.Context, assetID, targetLang string) (string, error) {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrAssetNotFound
		}
		return "", err
	}

	if asset.Transcript == "" {
		return "", ErrNoTranscript
	}
	if targetLang == "" {
		targetLang = "English"
	}

	return s.ai.Translate(ctx, asset.Transcript, targetLang, asset.LanguageName)
}

func (s *curationService) Synthesize(ctx context.Context, text, lang string) (string, error) {
	return s.ai.Synthesize(ctx, text, lang)
}

func (s *curationService) Stats(ctx context.Context) (*Stats, error) {
	allAssets, err := s.assets.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64)
	for _, asset := range allAssets {
		if asset.LanguageName != "" {
			distribution[asset.LanguageName]++
		}
	}

	ranking := make([]LanguageCount, 0, len(distribution))
	for name, value := range distribution {
		ranking = append(ranking, LanguageCount{Name: name, Value: value})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Value != ranking[j].Value {
			return ranking[i].Value > ranking[j].Value
		}
		return ranking[i].Name < ranking[j].Name
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}

	totalAssets := int64(len(allAssets))
	return &Stats{
		TotalAssets:          totalAssets,
		TotalHours:           fmt.Sprintf("%.2f", float64(totalAssets)*secondsPerClip/3600.0),
		LanguageCount:        len(distribution),
		LanguageDistribution: distribution,
		Distribution:         ranking,
	}, nil
}

func (s *curationService) MapStats(ctx context.Context) (*MapStats, error) {
	allAssets, err := s.assets.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	type cityGroup struct {
		stats     CityStats
		languages map[string]int
	}

	groups := make(map[string]*cityGroup)
	for i := range allAssets {
		asset := &allAssets[i]
		if asset.City == nil || *asset.City == "" {
			continue
		}

		region := "Unknown"
		if asset.Region != nil && *asset.Region != "" {
			region = *asset.Region
		}
		key := *asset.City + "|" + region

		group, ok := groups[key]
		if !ok {
			group = &cityGroup{
				stats: CityStats{
					City:   *asset.City,
					Region: region,
				},
				languages: make(map[string]int),
			}
			groups[key] = group
		}
		group.stats.Count++

		// First record carrying both coordinates seeds the pin position.
		if group.stats.Latitude == nil && asset.Latitude != nil && asset.Longitude != nil {
			group.stats.Latitude = asset.Latitude
			group.stats.Longitude = asset.Longitude
		}

		if asset.LanguageName != "" {
			group.languages[asset.LanguageName]++
		}
	}

	cities := make([]CityStats, 0, len(groups))
	for _, group := range groups {
		group.stats.PrimaryLanguage = primaryLanguage(group.languages)
		cities = append(cities, group.stats)
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Count != cities[j].Count {
			return cities[i].Count > cities[j].Count
		}
		return cities[i].City < cities[j].City
	})

	return &MapStats{
		Cities:      cities,
		TotalCities: len(cities),
		LastUpdated: time.Now().UTC(),
	}, nil
}

// primaryLanguage picks the most frequently observed language for a city
// group, ties broken lexicographically.
func primaryLanguage(languages map[string]int) string {
	best := ""
	bestCount := 0
	for name, count := range languages {
		if count > bestCount || (count == bestCount && (best == "" || name < best)) {
			best = name
			bestCount = count
		}
	}
	if best == "" {
		return "Unknown"
	}
	return best
}
