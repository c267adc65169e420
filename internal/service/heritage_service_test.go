package service

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heritageTargets = []string{
	"English", "Hindi", "Tamil", "Telugu", "Kannada",
	"Malayalam", "Bengali", "Gujarati", "Marathi", "Dogri",
}

func newHeritageFixture() (*memHeritageRepo, *memStorage, *fakeAI, HeritageService) {
	repo := newMemHeritageRepo()
	store := newMemStorage()
	aiSvc := &fakeAI{describeText: "A terracotta horse figure"}
	svc := NewHeritageService(repo, store, aiSvc, heritageTargets)
	return repo, store, aiSvc, svc
}

func imageUploadInput() UploadImageInput {
	return UploadImageInput{
		File:        FileUpload{Name: "temple.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
		Title:       "Village temple",
		Description: "A Dravidian gopuram at dusk",
		Language:    "Hindi",
		BaseURL:     "http://localhost:8080",
	}
}

func TestHeritageUploadFansOutTranslations(t *testing.T) {
	repo, store, aiSvc, svc := newHeritageFixture()

	record, err := svc.Upload(context.Background(), imageUploadInput())
	require.NoError(t, err)

	assert.Equal(t, "Village temple", record.Title)
	assert.Equal(t, domain.StatusPending, record.Status)
	assert.Regexp(t, contributorIDPattern, record.ContributorID)
	assert.True(t, strings.HasPrefix(record.ImageURL, "http://localhost:8080/api/v1/preservation/files/"))
	assert.Len(t, store.keys(), 1)

	// Original language plus the nine other configured targets.
	require.Len(t, record.Translations, 10)
	assert.Equal(t, "A Dravidian gopuram at dusk", record.Translations["Hindi"])
	assert.Equal(t, "Tamil:A Dravidian gopuram at dusk", record.Translations["Tamil"])
	assert.NotContains(t, aiSvc.translated, "Hindi")

	stored, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Translations, 10)
}

func TestHeritageUploadPartialTranslationFailure(t *testing.T) {
	_, _, aiSvc, svc := newHeritageFixture()
	aiSvc.failTranslate = map[string]bool{"Tamil": true}

	record, err := svc.Upload(context.Background(), imageUploadInput())
	require.NoError(t, err)

	// The failed target is omitted, everything else still lands.
	assert.Len(t, record.Translations, 9)
	assert.NotContains(t, record.Translations, "Tamil")
	assert.Contains(t, record.Translations, "Telugu")
}

func TestHeritageUploadSkipsOriginalLanguageCaseInsensitively(t *testing.T) {
	_, _, aiSvc, svc := newHeritageFixture()

	input := imageUploadInput()
	input.Language = "hindi"

	record, err := svc.Upload(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "A Dravidian gopuram at dusk", record.Translations["hindi"])
	assert.NotContains(t, aiSvc.translated, "Hindi")
	assert.Len(t, record.Translations, 10)
}

func TestHeritageUploadGeneratesMissingDescription(t *testing.T) {
	_, _, aiSvc, svc := newHeritageFixture()

	input := imageUploadInput()
	input.Description = "   "

	record, err := svc.Upload(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 1, aiSvc.describeCalls)
	assert.Equal(t, "A terracotta horse figure", record.OriginalDescription)
}

func TestHeritageUploadKeepsProvidedDescription(t *testing.T) {
	_, _, aiSvc, svc := newHeritageFixture()

	record, err := svc.Upload(context.Background(), imageUploadInput())
	require.NoError(t, err)
	assert.Equal(t, 0, aiSvc.describeCalls)
	assert.Equal(t, "A Dravidian gopuram at dusk", record.OriginalDescription)
}

func TestHeritageUploadDescribeFailureStoresPlaceholder(t *testing.T) {
	_, _, aiSvc, svc := newHeritageFixture()
	aiSvc.describeErr = fmt.Errorf("%w: vision", ai.ErrUnavailable)

	input := imageUploadInput()
	input.Description = ""

	record, err := svc.Upload(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, DescriptionPlaceholder, record.OriginalDescription)
}

func TestHeritageUploadValidation(t *testing.T) {
	_, store, _, svc := newHeritageFixture()

	input := imageUploadInput()
	input.Title = ""
	_, err := svc.Upload(context.Background(), input)
	assert.ErrorIs(t, err, ErrTitleRequired)

	input = imageUploadInput()
	input.Language = ""
	_, err = svc.Upload(context.Background(), input)
	assert.ErrorIs(t, err, ErrLanguageRequired)

	input = imageUploadInput()
	input.File.Data = nil
	_, err = svc.Upload(context.Background(), input)
	assert.ErrorIs(t, err, ErrImageRequired)

	assert.Empty(t, store.keys())
}

func TestHeritageUploadReclaimsBlobWhenPersistFails(t *testing.T) {
	repo, store, _, svc := newHeritageFixture()
	repo.createErr = errors.New("write concern timeout")

	_, err := svc.Upload(context.Background(), imageUploadInput())
	require.Error(t, err)
	assert.Empty(t, store.keys())
	assert.Len(t, store.deleted, 1)
}

func TestAnalyze(t *testing.T) {
	_, _, aiSvc, svc := newHeritageFixture()

	caption, err := svc.Analyze(context.Background(), FileUpload{Name: "x.jpg", ContentType: "image/jpeg", Data: []byte("img")})
	require.NoError(t, err)
	assert.Equal(t, "A terracotta horse figure", caption)

	_, err = svc.Analyze(context.Background(), FileUpload{})
	assert.ErrorIs(t, err, ErrImageRequired)

	aiSvc.describeErr = fmt.Errorf("%w: vision", ai.ErrUnavailable)
	_, err = svc.Analyze(context.Background(), FileUpload{Data: []byte("img")})
	assert.ErrorIs(t, err, ai.ErrUnavailable)
}

func TestHeritageListings(t *testing.T) {
	repo := newMemHeritageRepo()
	svc := NewHeritageService(repo, newMemStorage(), &fakeAI{}, heritageTargets)

	require.NoError(t, repo.Create(context.Background(), &domain.VisualHeritage{ID: "h1", Status: domain.StatusPending}))
	require.NoError(t, repo.Create(context.Background(), &domain.VisualHeritage{ID: "h2", Status: domain.StatusVerified}))

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := svc.ListApproved(context.Background())
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "h2", approved[0].ID)
}
