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

// HeritageHandler serves the visual heritage pipeline and listings.
type HeritageHandler struct {
	heritageService service.HeritageService
	baseURL         string
}

// NewHeritageHandler creates a new HeritageHandler.
func NewHeritageHandler(heritageService service.HeritageService, baseURL string) *HeritageHandler {
	return &HeritageHandler{heritageService: heritageService, baseURL: baseURL}
}

// Analyze handles POST /api/v1/visual-heritage/analyze: an AI caption
// preview without persisting anything.
func (h *HeritageHandler) Analyze(c *gin.Context) {
	file, err := readFormFile(c, "file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Image file is required.")
		return
	}

	description, err := h.heritageService.Analyze(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "AI Service Unavailable")
			return
		}
		log.Printf("ERROR: Image analysis failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Analysis failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}

// Upload handles POST /api/v1/visual-heritage/upload.
// Multipart fields: file, title, description?, language, region?.
func (h *HeritageHandler) Upload(c *gin.Context) {
	file, err := readFormFile(c, "file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Image file is required.")
		return
	}

	input := service.UploadImageInput{
		File:        file,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Language:    c.PostForm("language"),
		Region:      optionalStringForm(c, "region"),
		BaseURL:     h.requestBaseURL(c),
	}

	heritage, err := h.heritageService.Upload(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrLanguageRequired),
			errors.Is(err, service.ErrImageRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR: Heritage upload failed: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Upload failed.")
		}
		return
	}

	c.JSON(http.StatusOK, heritage)
}

// ListAll handles GET /api/v1/visual-heritage.
func (h *HeritageHandler) ListAll(c *gin.Context) {
	records, err := h.heritageService.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list heritage records: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to list heritage records.")
		return
	}
	if records == nil {
		records = []domain.VisualHeritage{}
	}
	c.JSON(http.StatusOK, records)
}

// ListApproved handles GET /api/v1/visual-heritage/approved, filtered to
// verified records.
func (h *HeritageHandler) ListApproved(c *gin.Context) {
	records, err := h.heritageService.ListApproved(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: Failed to list approved heritage records: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to list heritage records.")
		return
	}
	if records == nil {
		records = []domain.VisualHeritage{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *HeritageHandler) requestBaseURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return requestOrigin(c)
}
