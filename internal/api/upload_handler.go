package api

import (
	"bhasharakshak/preservation-app/internal/service"
	"bhasharakshak/preservation-app/internal/storage"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UploadHandler serves the audio contribution pipeline and blob retrieval.
type UploadHandler struct {
	assetService service.AssetService
	// baseURL overrides request-derived origins when set (reverse proxies).
	baseURL string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(assetService service.AssetService, baseURL string) *UploadHandler {
	return &UploadHandler{assetService: assetService, baseURL: baseURL}
}

// UploadAudio handles POST /api/v1/preservation/upload.
// Multipart fields: file, language, dialect, targetLanguage?, region?,
// city?, latitude?, longitude?, consent, isPrivate?, userId?.
func (h *UploadHandler) UploadAudio(c *gin.Context) {
	file, err := readFormFile(c, "file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Audio file is required.")
		return
	}

	language := c.PostForm("language")
	if language == "" {
		abortWithError(c, http.StatusBadRequest, "Language is required.")
		return
	}

	consent, _ := strconv.ParseBool(c.PostForm("consent"))
	isPrivate, _ := strconv.ParseBool(c.DefaultPostForm("isPrivate", "false"))

	latitude, err := optionalFloatForm(c, "latitude")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid latitude.")
		return
	}
	longitude, err := optionalFloatForm(c, "longitude")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid longitude.")
		return
	}

	input := service.UploadAudioInput{
		File:           file,
		Language:       language,
		Dialect:        c.PostForm("dialect"),
		TargetLanguage: c.DefaultPostForm("targetLanguage", "English"),
		Region:         optionalStringForm(c, "region"),
		City:           optionalStringForm(c, "city"),
		Latitude:       latitude,
		Longitude:      longitude,
		Consent:        consent,
		IsPrivate:      isPrivate,
		UserID:         c.PostForm("userId"),
		BaseURL:        h.requestBaseURL(c),
	}

	asset, err := h.assetService.UploadAudio(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDRequired),
			errors.Is(err, service.ErrConsentRequired),
			errors.Is(err, service.ErrLanguageInappropriate),
			errors.Is(err, service.ErrDialectInappropriate),
			errors.Is(err, service.ErrFileRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR: Upload failed: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Upload failed.")
		}
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetFile handles GET /api/v1/preservation/files/:id and streams the blob
// back with its stored content type.
func (h *UploadHandler) GetFile(c *gin.Context) {
	fileID := c.Param("id")

	body, contentType, size, err := h.assetService.GetFile(c.Request.Context(), fileID)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			abortWithError(c, http.StatusNotFound, "File not found")
			return
		}
		log.Printf("ERROR: Failed to retrieve file '%s': %v", fileID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve file.")
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, size, contentType, body, nil)
}

// requestBaseURL resolves the origin used for building file URLs: the
// configured base URL when set, otherwise derived from the request.
func (h *UploadHandler) requestBaseURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	return requestOrigin(c)
}

// --- Shared form helpers ---

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func readFormFile(c *gin.Context, field string) (service.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return service.FileUpload{}, err
	}
	return fileFromHeader(header)
}

func fileFromHeader(header *multipart.FileHeader) (service.FileUpload, error) {
	f, err := header.Open()
	if err != nil {
		return service.FileUpload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.FileUpload{}, err
	}

	return service.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func optionalStringForm(c *gin.Context, field string) *string {
	value := c.PostForm(field)
	if value == "" {
		return nil
	}
	return &value
}

func optionalFloatForm(c *gin.Context, field string) (*float64, error) {
	value := c.PostForm(field)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
