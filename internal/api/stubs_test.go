package api

import (
	"bhasharakshak/preservation-app/internal/config"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/service"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

const testAdminPin = "4242"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// --- Service stubs ---

type stubAssetService struct {
	uploadFn  func(ctx context.Context, input service.UploadAudioInput) (*domain.LanguageAsset, error)
	getFileFn func(ctx context.Context, fileID string) (io.ReadCloser, string, int64, error)
}

func (s *stubAssetService) UploadAudio(ctx context.Context, input service.UploadAudioInput) (*domain.LanguageAsset, error) {
	return s.uploadFn(ctx, input)
}

func (s *stubAssetService) GetFile(ctx context.Context, fileID string) (io.ReadCloser, string, int64, error) {
	return s.getFileFn(ctx, fileID)
}

type stubCurationService struct {
	searchFn     func(ctx context.Context, query string, includeAll bool) ([]domain.LanguageAsset, error)
	pendingFn    func(ctx context.Context) ([]domain.LanguageAsset, error)
	saveFn       func(ctx context.Context, assetID, englishTranslation string) (*domain.LanguageAsset, error)
	deleteFn     func(ctx context.Context, assetID string) error
	autoFn       func(ctx context.Context, assetID, targetLang string) (string, error)
	synthesizeFn func(ctx context.Context, text, lang string) (string, error)
	statsFn      func(ctx context.Context) (*service.Stats, error)
	mapStatsFn   func(ctx context.Context) (*service.MapStats, error)
}

func (s *stubCurationService) Search(ctx context.Context, query string, includeAll bool) ([]domain.LanguageAsset, error) {
	return s.searchFn(ctx, query, includeAll)
}

func (s *stubCurationService) PendingQueue(ctx context.Context) ([]domain.LanguageAsset, error) {
	return s.pendingFn(ctx)
}

func (s *stubCurationService) SaveTranslation(ctx context.Context, assetID, englishTranslation string) (*domain.LanguageAsset, error) {
	return s.saveFn(ctx, assetID, englishTranslation)
}

func (s *stubCurationService) DeleteAsset(ctx context.Context, assetID string) error {
	return s.deleteFn(ctx, assetID)
}

func (s *stubCurationService) AutoTranslate(ctx context.Context, assetID, targetLang string) (string, error) {
	return s.autoFn(ctx, assetID, targetLang)
}

func (s *stubCurationService) Synthesize(ctx context.Context, text, lang string) (string, error) {
	return s.synthesizeFn(ctx, text, lang)
}

func (s *stubCurationService) Stats(ctx context.Context) (*service.Stats, error) {
	return s.statsFn(ctx)
}

func (s *stubCurationService) MapStats(ctx context.Context) (*service.MapStats, error) {
	return s.mapStatsFn(ctx)
}

type stubCollectionService struct {
	listFn       func(ctx context.Context, userID, language string) ([]domain.LanguageAsset, error)
	getFn        func(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error)
	deleteFn     func(ctx context.Context, assetID, userID string) error
	makePublicFn func(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error)
	countFn      func(ctx context.Context, userID string) (int64, error)
}

func (s *stubCollectionService) ListByUser(ctx context.Context, userID, language string) ([]domain.LanguageAsset, error) {
	return s.listFn(ctx, userID, language)
}

func (s *stubCollectionService) GetOwned(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error) {
	return s.getFn(ctx, assetID, userID)
}

func (s *stubCollectionService) DeleteOwned(ctx context.Context, assetID, userID string) error {
	return s.deleteFn(ctx, assetID, userID)
}

func (s *stubCollectionService) MakePublic(ctx context.Context, assetID, userID string) (*domain.LanguageAsset, error) {
	return s.makePublicFn(ctx, assetID, userID)
}

func (s *stubCollectionService) Count(ctx context.Context, userID string) (int64, error) {
	return s.countFn(ctx, userID)
}

type stubHeritageService struct {
	analyzeFn      func(ctx context.Context, image service.FileUpload) (string, error)
	uploadFn       func(ctx context.Context, input service.UploadImageInput) (*domain.VisualHeritage, error)
	listAllFn      func(ctx context.Context) ([]domain.VisualHeritage, error)
	listApprovedFn func(ctx context.Context) ([]domain.VisualHeritage, error)
}

func (s *stubHeritageService) Analyze(ctx context.Context, image service.FileUpload) (string, error) {
	return s.analyzeFn(ctx, image)
}

func (s *stubHeritageService) Upload(ctx context.Context, input service.UploadImageInput) (*domain.VisualHeritage, error) {
	return s.uploadFn(ctx, input)
}

func (s *stubHeritageService) ListAll(ctx context.Context) ([]domain.VisualHeritage, error) {
	return s.listAllFn(ctx)
}

func (s *stubHeritageService) ListApproved(ctx context.Context) ([]domain.VisualHeritage, error) {
	return s.listApprovedFn(ctx)
}

// --- Router / request helpers ---

type testServices struct {
	assets      *stubAssetService
	curation    *stubCurationService
	collections *stubCollectionService
	heritage    *stubHeritageService
}

func newTestRouter(svcs testServices) *gin.Engine {
	if svcs.assets == nil {
		svcs.assets = &stubAssetService{}
	}
	if svcs.curation == nil {
		svcs.curation = &stubCurationService{}
	}
	if svcs.collections == nil {
		svcs.collections = &stubCollectionService{}
	}
	if svcs.heritage == nil {
		svcs.heritage = &stubHeritageService{}
	}

	cfg := config.Config{}
	cfg.App.AdminPin = testAdminPin
	cfg.App.CORSOrigins = []string{"http://localhost:5173"}

	router := gin.New()
	SetupRoutes(router, cfg, svcs.assets, svcs.curation, svcs.collections, svcs.heritage)
	return router
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartBody builds a multipart form with an optional file part.
func multipartBody(t *testing.T, fileField, fileName string, fileData []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatal(err)
		}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}
