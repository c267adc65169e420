package api

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TranslationHandler serves the admin curation queue: pending listing,
// verification, deletion and the translation/TTS previews.
type TranslationHandler struct {
	curationService service.CurationService
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(curationService service.CurationService) *TranslationHandler {
	return &TranslationHandler{curationService: curationService}
}

// --- DTOs ---

// SaveTranslationRequest is the verification payload.
type SaveTranslationRequest struct {
	EnglishTranslation string `json:"englishTranslation"`
}

// TTSRequest is the body of the TTS preview.
type TTSRequest struct {
	Text string `json:"text" binding:"required"`
	Lang string `json:"lang"`
}

// --- Handler Methods ---

// Pending handles GET /api/v1/translate/pending.
func (h *TranslationHandler) Pending(c *gin.Context) {
	pending, err := h.curationService.PendingQueue(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list pending assets: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to list pending assets.")
		return
	}
	if pending == nil {
		pending = []domain.LanguageAsset{}
	}
	c.JSON(http.StatusOK, pending)
}

// SaveTranslation handles PATCH /api/v1/translate/:assetId. Admin PIN is
// enforced by the route middleware.
func (h *TranslationHandler) SaveTranslation(c *gin.Context) {
	var req SaveTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	asset, err := h.curationService.SaveTranslation(c.Request.Context(), c.Param("assetId"), req.EnglishTranslation)
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			abortWithError(c, http.StatusNotFound, "Asset not found")
			return
		}
		log.Printf("ERROR: Failed to save translation: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save translation.")
		return
	}

	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /api/v1/translate/:assetId. Admin PIN is enforced
// by the route middleware.
func (h *TranslationHandler) Delete(c *gin.Context) {
	err := h.curationService.DeleteAsset(c.Request.Context(), c.Param("assetId"))
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			abortWithError(c, http.StatusNotFound, "Asset not found")
			return
		}
		log.Printf("ERROR: Failed to delete asset: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to delete asset.")
		return
	}

	c.Status(http.StatusOK)
}

// AutoTranslate handles POST /api/v1/translate/auto/:assetId?targetLang=.
func (h *TranslationHandler) AutoTranslate(c *gin.Context) {
	targetLang := c.DefaultQuery("targetLang", "English")

	translated, err := h.curationService.AutoTranslate(c.Request.Context(), c.Param("assetId"), targetLang)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssetNotFound):
			abortWithError(c, http.StatusNotFound, "Asset not found")
		case errors.Is(err, service.ErrNoTranscript):
			abortWithError(c, http.StatusBadRequest, "No transcript available")
		case errors.Is(err, ai.ErrUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, "AI Service Unavailable")
		default:
			log.Printf("ERROR: Auto-translate failed: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Translation failed.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"translatedText": translated})
}

// TTS handles POST /api/v1/translate/tts with a JSON body.
func (h *TranslationHandler) TTS(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	audioData, err := h.curationService.Synthesize(c.Request.Context(), req.Text, req.Lang)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "TTS Service Unavailable")
			return
		}
		log.Printf("ERROR: TTS failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "TTS failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"audioData": audioData})
}
