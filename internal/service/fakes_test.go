package service

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/repository"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// --- In-memory asset repository ---

type memAssetRepo struct {
	mu        sync.Mutex
	assets    map[string]domain.LanguageAsset
	createErr error
}

func newMemAssetRepo() *memAssetRepo {
	return &memAssetRepo{assets: make(map[string]domain.LanguageAsset)}
}

func (r *memAssetRepo) Create(_ context.Context, asset *domain.LanguageAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.assets[asset.AssetID] = *asset
	return nil
}

func (r *memAssetRepo) GetByID(_ context.Context, id string) (*domain.LanguageAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &asset, nil
}

func (r *memAssetRepo) Update(_ context.Context, asset *domain.LanguageAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[asset.AssetID]; !ok {
		return repository.ErrNotFound
	}
	r.assets[asset.AssetID] = *asset
	return nil
}

func (r *memAssetRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *memAssetRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.assets[id]
	return ok, nil
}

func (r *memAssetRepo) FindAll(_ context.Context) ([]domain.LanguageAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LanguageAsset, 0, len(r.assets))
	for _, asset := range r.assets {
		out = append(out, asset)
	}
	return out, nil
}

func (r *memAssetRepo) FindByStatus(_ context.Context, status domain.AssetStatus) ([]domain.LanguageAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LanguageAsset
	for _, asset := range r.assets {
		if asset.Status == status {
			out = append(out, asset)
		}
	}
	return out, nil
}

func (r *memAssetRepo) FindByLanguageNameContainingIgnoreCase(_ context.Context, query string) ([]domain.LanguageAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LanguageAsset
	for _, asset := range r.assets {
		if strings.Contains(strings.ToLower(asset.LanguageName), strings.ToLower(query)) {
			out = append(out, asset)
		}
	}
	return out, nil
}

func (r *memAssetRepo) FindByUserIDAndIsPrivate(_ context.Context, userID string, isPrivate bool) ([]domain.LanguageAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LanguageAsset
	for _, asset := range r.assets {
		if asset.IsPrivate == isPrivate && asset.UserID != nil && *asset.UserID == userID {
			out = append(out, asset)
		}
	}
	return out, nil
}

func (r *memAssetRepo) CountByUserIDAndIsPrivate(ctx context.Context, userID string, isPrivate bool) (int64, error) {
	found, err := r.FindByUserIDAndIsPrivate(ctx, userID, isPrivate)
	return int64(len(found)), err
}

// --- In-memory heritage repository ---

type memHeritageRepo struct {
	mu        sync.Mutex
	records   map[string]domain.VisualHeritage
	createErr error
}

func newMemHeritageRepo() *memHeritageRepo {
	return &memHeritageRepo{records: make(map[string]domain.VisualHeritage)}
}

func (r *memHeritageRepo) Create(_ context.Context, heritage *domain.VisualHeritage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.records[heritage.ID] = *heritage
	return nil
}

func (r *memHeritageRepo) GetByID(_ context.Context, id string) (*domain.VisualHeritage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (r *memHeritageRepo) FindAll(_ context.Context) ([]domain.VisualHeritage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.VisualHeritage, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *memHeritageRepo) FindByStatus(_ context.Context, status domain.AssetStatus) ([]domain.VisualHeritage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.VisualHeritage
	for _, record := range r.records {
		if record.Status == status {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *memHeritageRepo) FindByLanguage(_ context.Context, language string) ([]domain.VisualHeritage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.VisualHeritage
	for _, record := range r.records {
		if record.Language == language {
			out = append(out, record)
		}
	}
	return out, nil
}

// --- In-memory blob storage ---

type memObject struct {
	contentType string
	data        []byte
}

type memStorage struct {
	mu        sync.Mutex
	objects   map[string]memObject
	uploadErr error
	deleted   []string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string]memObject)}
}

func (s *memStorage) Upload(_ context.Context, objectKey, contentType string, body io.Reader, _ int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[objectKey] = memObject{contentType: contentType, data: data}
	return nil
}

func (s *memStorage) Download(_ context.Context, objectKey string) (io.ReadCloser, string, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[objectKey]
	if !ok {
		return nil, "", 0, fmt.Errorf("object %s missing", objectKey)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, int64(len(obj.data)), nil
}

func (s *memStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey)
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *memStorage) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for key := range s.objects {
		out = append(out, key)
	}
	return out
}

// --- Fake AI service ---

type fakeAI struct {
	mu sync.Mutex

	transcript    string
	transcribeErr error

	failTranslate map[string]bool // target language -> fail
	translated    []string        // target languages requested, in call order

	describeText  string
	describeErr   error
	describeCalls int

	audioData string
	synthErr  error
}

func (f *fakeAI) Transcribe(_ context.Context, _ ai.File, _ string) (string, error) {
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	return f.transcript, nil
}

func (f *fakeAI) Translate(_ context.Context, text, targetLang, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTranslate[targetLang] {
		return "", fmt.Errorf("%w: translate", ai.ErrUnavailable)
	}
	f.translated = append(f.translated, targetLang)
	return targetLang + ":" + text, nil
}

func (f *fakeAI) Synthesize(_ context.Context, _, _ string) (string, error) {
	if f.synthErr != nil {
		return "", f.synthErr
	}
	return f.audioData, nil
}

func (f *fakeAI) Describe(_ context.Context, _ ai.File) (string, error) {
	f.mu.Lock()
	f.describeCalls++
	f.mu.Unlock()
	if f.describeErr != nil {
		return "", f.describeErr
	}
	return f.describeText, nil
}
