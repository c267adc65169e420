package service

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/profanity"
	"bhasharakshak/preservation-app/internal/repository"
	"bhasharakshak/preservation-app/internal/storage"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Error Definitions ---
// Validation messages are part of the API contract and surface verbatim.
var (
	ErrUserIDRequired        = errors.New("User ID is required for private collections.")
	ErrConsentRequired       = errors.New("Consent is mandatory for public contributions.")
	ErrLanguageInappropriate = errors.New("Language name contains inappropriate content.")
	ErrDialectInappropriate  = errors.New("Dialect contains inappropriate content.")
	ErrFileRequired          = errors.New("Audio file is required.")
)

// TranscriptionPlaceholder is stored when the AI service cannot transcribe
// the clip. The upload itself still succeeds.
const TranscriptionPlaceholder = "Transcription unavailable (AI Service down)"

// FileRoute is the retrieval path that stored blob IDs are appended to when
// building externally resolvable URLs.
const FileRoute = "/api/v1/preservation/files/"

// FileUpload carries a submitted multipart file through the pipelines.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadAudioInput is the validated form payload of an audio contribution.
type UploadAudioInput struct {
	File           FileUpload
	Language       string
	Dialect        string
	TargetLanguage string
	Region         *string
	City           *string
	Latitude       *float64
	Longitude      *float64
	Consent        bool
	IsPrivate      bool
	UserID         string
	// BaseURL is the origin of the current request (scheme://host), used to
	// derive the canonical audio URL.
	BaseURL string
}

// AssetService orchestrates the audio contribution pipeline and blob retrieval.
type AssetService interface {
	UploadAudio(ctx context.Context, input UploadAudioInput) (*domain.LanguageAsset, error)
	GetFile(ctx context.Context, fileID string) (io.ReadCloser, string, int64, error)
}

type assetService struct {
	assets  repository.AssetRepository
	storage storage.FileStorage
	ai      ai.Service
	filter  *profanity.Filter
}

// NewAssetService creates a new instance of assetService.
func NewAssetService(assets repository.AssetRepository, fileStorage storage.FileStorage, aiService ai.Service, filter *profanity.Filter) AssetService {
	return &assetService{
		assets:  assets,
		storage: fileStorage,
		ai:      aiService,
		filter:  filter,
	}
}

// UploadAudio runs the contribution pipeline: validation, blob persist,
// transcription, metadata persist. The ordering is strict; the blob is
// always written before the metadata record that references it.
func (s *assetService) UploadAudio(ctx context.Context, input UploadAudioInput) (*domain.LanguageAsset, error) {
	userID := strings.TrimSpace(input.UserID)

	if input.IsPrivate && userID == "" {
		return nil, ErrUserIDRequired
	}
	if !input.IsPrivate && !input.Consent {
		return nil, ErrConsentRequired
	}
	if len(input.File.Data) == 0 {
		return nil, ErrFileRequired
	}
	if s.filter.Contains(input.Language) {
		return nil, ErrLanguageInappropriate
	}
	if s.filter.Contains(input.Dialect) {
		return nil, ErrDialectInappropriate
	}

	// 1. Persist the blob and derive the canonical retrieval URL.
	fileID := uuid.NewString()
	err := s.storage.Upload(ctx, fileID, input.File.ContentType, bytes.NewReader(input.File.Data), int64(len(input.File.Data)))
	if err != nil {
		return nil, fmt.Errorf("storing audio blob: %w", err)
	}
	audioURL := strings.TrimSuffix(input.BaseURL, "/") + FileRoute + fileID

	// 2. Transcribe. A transcription failure never fails the upload; the
	// placeholder is stored and the admin can translate manually later.
	transcript, err := s.ai.Transcribe(ctx, ai.File{
		Name:        input.File.Name,
		ContentType: input.File.ContentType,
		Data:        input.File.Data,
	}, input.Language)
	if err != nil {
		log.Printf("WARN: AI service unavailable, storing placeholder transcript: %v", err)
		transcript = TranscriptionPlaceholder
	}

	targetLanguage := input.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = "English"
	}

	// 3. Construct and persist the asset.
	now := time.Now().UTC()
	asset := &domain.LanguageAsset{
		AssetID:          uuid.NewString(),
		ContributorID:    newContributorID(),
		LanguageName:     input.Language,
		Dialect:          input.Dialect,
		TargetLanguage:   targetLanguage,
		Transcript:       transcript,
		AudioURL:         audioURL,
		ConsentGiven:     input.Consent,
		ConsentTimestamp: now,
		Region:           input.Region,
		City:             input.City,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		IsPrivate:        input.IsPrivate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.IsPrivate {
		asset.UserID = &userID
		asset.Status = domain.StatusPrivate
	} else {
		asset.Status = domain.StatusPending
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		// The blob would dangle without its metadata record; reclaim it
		// best-effort even when the request context is already gone.
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if delErr := s.storage.DeleteObject(cleanupCtx, fileID); delErr != nil {
			log.Printf("ERROR: Failed to reclaim orphan blob '%s': %v", fileID, delErr)
		}
		return nil, fmt.Errorf("persisting asset: %w", err)
	}

	return asset, nil
}

// GetFile streams a stored blob back with its recorded content type.
func (s *assetService) GetFile(ctx context.Context, fileID string) (io.ReadCloser, string, int64, error) {
	return s.storage.Download(ctx, fileID)
}

// newContributorID mints a one-off anonymised contributor token. It is not
// a stable user identity.
func newContributorID() string {
	return "ANON-" + uuid.NewString()[:8]
}
