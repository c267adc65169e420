package service

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/repository"
	"bhasharakshak/preservation-app/internal/storage"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// --- Error Definitions ---
var (
	ErrTitleRequired    = errors.New("Title is required.")
	ErrLanguageRequired = errors.New("Language is required.")
	ErrImageRequired    = errors.New("Image file is required.")
)

// DescriptionPlaceholder is stored when the description is missing and the
// AI service cannot caption the image.
const DescriptionPlaceholder = "Description unavailable."

// Translation fan-out runs at most this many AI calls concurrently.
const translateFanOutLimit = 4

// UploadImageInput is the validated form payload of an image contribution.
type UploadImageInput struct {
	File        FileUpload
	Title       string
	Description string
	Language    string
	Region      *string
	BaseURL     string
}

// HeritageService orchestrates the visual heritage pipeline and listings.
type HeritageService interface {
	// Analyze returns an AI caption for the image without persisting anything.
	Analyze(ctx context.Context, image FileUpload) (string, error)
	// Upload stores the image, resolves its description and fans out the
	// translation matrix before persisting the record.
	Upload(ctx context.Context, input UploadImageInput) (*domain.VisualHeritage, error)
	ListAll(ctx context.Context) ([]domain.VisualHeritage, error)
	ListApproved(ctx context.Context) ([]domain.VisualHeritage, error)
}

type heritageService struct {
	heritage        repository.HeritageRepository
	storage         storage.FileStorage
	ai              ai.Service
	targetLanguages []string
}

// NewHeritageService creates a new instance of heritageService. The target
// language list is the closed set the translation matrix fans out to.
func NewHeritageService(heritage repository.HeritageRepository, fileStorage storage.FileStorage, aiService ai.Service, targetLanguages []string) HeritageService {
	return &heritageService{
		heritage:        heritage,
		storage:         fileStorage,
		ai:              aiService,
		targetLanguages: targetLanguages,
	}
}

func (s *heritageService) Analyze(ctx context.Context, image FileUpload) (string, error) {
	if len(image.Data) == 0 {
		return "", ErrImageRequired
	}
	return s.ai.Describe(ctx, ai.File{
		Name:        image.Name,
		ContentType: image.ContentType,
		Data:        image.Data,
	})
}

func (s *heritageService) Upload(ctx context.Context, input UploadImageInput) (*domain.VisualHeritage, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Language == "" {
		return nil, ErrLanguageRequired
	}
	if len(input.File.Data) == 0 {
		return nil, ErrImageRequired
	}

	// 1. Persist the blob; images reuse the preservation file endpoint.
	fileID := uuid.NewString()
	err := s.storage.Upload(ctx, fileID, input.File.ContentType, bytes.NewReader(input.File.Data), int64(len(input.File.Data)))
	if err != nil {
		return nil, fmt.Errorf("storing image blob: %w", err)
	}
	imageURL := strings.TrimSuffix(input.BaseURL, "/") + FileRoute + fileID

	// 2. Auto-generate the description when missing.
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description, err = s.ai.Describe(ctx, ai.File{
			Name:        input.File.Name,
			ContentType: input.File.ContentType,
			Data:        input.File.Data,
		})
		if err != nil {
			log.Printf("WARN: Image description unavailable: %v", err)
			description = DescriptionPlaceholder
		}
	}

	// 3. Build the translation matrix. Partial maps are valid: a failed
	// target language is logged and omitted, never fatal.
	translations := s.translateFanOut(ctx, description, input.Language)

	// 4. Persist the record.
	now := time.Now().UTC()
	heritage := &domain.VisualHeritage{
		ID:                  uuid.NewString(),
		Title:               input.Title,
		ImageURL:            imageURL,
		OriginalDescription: description,
		Language:            input.Language,
		Translations:        translations,
		ContributorID:       newContributorID(),
		Region:              input.Region,
		Status:              domain.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.heritage.Create(ctx, heritage); err != nil {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if delErr := s.storage.DeleteObject(cleanupCtx, fileID); delErr != nil {
			log.Printf("ERROR: Failed to reclaim orphan blob '%s': %v", fileID, delErr)
		}
		return nil, fmt.Errorf("persisting heritage record: %w", err)
	}

	return heritage, nil
}

// translateFanOut translates the description into every configured target
// language except the original, with bounded concurrency. The returned map
// always contains the original language key.
func (s *heritageService) translateFanOut(ctx context.Context, description, language string) map[string]string {
	translations := map[string]string{language: description}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(translateFanOutLimit)

	for _, targetLang := range s.targetLanguages {
		if strings.EqualFold(targetLang, language) {
			continue
		}
		g.Go(func() error {
			translated, err := s.ai.Translate(gctx, description, targetLang, language)
			if err != nil {
				log.Printf("WARN: Failed to translate to %s: %v", targetLang, err)
				return nil // partial maps are fine
			}
			mu.Lock()
			translations[targetLang] = translated
			mu.Unlock()
			return nil
		})
	}

	// Workers only ever return nil; Wait is for completion, not errors.
	_ = g.Wait()
	return translations
}

func (s *heritageService) ListAll(ctx context.Context) ([]domain.VisualHeritage, error) {
	return s.heritage.FindAll(ctx)
}

func (s *heritageService) ListApproved(ctx context.Context) ([]domain.VisualHeritage, error) {
	return s.heritage.FindByStatus(ctx, domain.StatusVerified)
}
