package api

import (
	"bhasharakshak/preservation-app/internal/ai"
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/service"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the public query surface: search, TTS preview and
// the aggregate statistics endpoints.
type SearchHandler struct {
	curationService service.CurationService
	adminPin        string
}

// NewSearchHandler creates a new SearchHandler. The admin PIN is needed to
// decide whether an includeAll search may bypass the public filters.
func NewSearchHandler(curationService service.CurationService, adminPin string) *SearchHandler {
	return &SearchHandler{curationService: curationService, adminPin: adminPin}
}

// Search handles GET /api/v1/search?query=&includeAll=.
// includeAll is only honoured together with a valid X-Admin-Pin header;
// without it the request degrades to the public (verified, non-private) view.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	includeAll, _ := strconv.ParseBool(c.DefaultQuery("includeAll", "false"))
	includeAll = includeAll && pinMatches(c.GetHeader(AdminPinHeader), h.adminPin)

	results, err := h.curationService.Search(c.Request.Context(), query, includeAll)
	if err != nil {
		log.Printf("ERROR: Search failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Search failed.")
		return
	}
	if results == nil {
		results = []domain.LanguageAsset{}
	}
	c.JSON(http.StatusOK, results)
}

// TTS handles GET /api/v1/tts?text=&lang=.
func (h *SearchHandler) TTS(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		abortWithError(c, http.StatusBadRequest, "Text is required.")
		return
	}
	lang := c.DefaultQuery("lang", "en")

	audioData, err := h.curationService.Synthesize(c.Request.Context(), text, lang)
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

// Stats handles GET /api/v1/stats.
func (h *SearchHandler) Stats(c *gin.Context) {
	stats, err := h.curationService.Stats(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Stats failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to compute statistics.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MapStats handles GET /api/v1/map-stats.
func (h *SearchHandler) MapStats(c *gin.Context) {
	stats, err := h.curationService.MapStats(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Map stats failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to compute map statistics.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
