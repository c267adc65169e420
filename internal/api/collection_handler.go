package api

import (
	"bhasharakshak/preservation-app/internal/domain"
	"bhasharakshak/preservation-app/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CollectionHandler serves per-user private collections. The userId query
// parameter is the client-minted ownership token.
type CollectionHandler struct {
	collectionService service.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// List handles GET /api/v1/my-collections?userId=&language=.
func (h *CollectionHandler) List(c *gin.Context) {
	assets, err := h.collectionService.ListByUser(c.Request.Context(), c.Query("userId"), c.Query("language"))
	if err != nil {
		h.abortCollectionError(c, err, "Failed to list collections.")
		return
	}
	if assets == nil {
		assets = []domain.LanguageAsset{}
	}
	c.JSON(http.StatusOK, assets)
}

// Get handles GET /api/v1/my-collections/:id?userId=.
func (h *CollectionHandler) Get(c *gin.Context) {
	asset, err := h.collectionService.GetOwned(c.Request.Context(), c.Param("id"), c.Query("userId"))
	if err != nil {
		h.abortCollectionError(c, err, "Failed to retrieve asset.")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// Delete handles DELETE /api/v1/my-collections/:id?userId=.
func (h *CollectionHandler) Delete(c *gin.Context) {
	assetID := c.Param("id")
	if err := h.collectionService.DeleteOwned(c.Request.Context(), assetID, c.Query("userId")); err != nil {
		h.abortCollectionError(c, err, "Failed to delete asset.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Asset deleted successfully",
		"assetId": assetID,
	})
}

// MakePublic handles PATCH /api/v1/my-collections/:id/make-public?userId=.
func (h *CollectionHandler) MakePublic(c *gin.Context) {
	asset, err := h.collectionService.MakePublic(c.Request.Context(), c.Param("id"), c.Query("userId"))
	if err != nil {
		h.abortCollectionError(c, err, "Failed to make asset public.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Asset is now public and pending verification",
		"asset":   asset,
	})
}

// Count handles GET /api/v1/my-collections/count?userId=.
func (h *CollectionHandler) Count(c *gin.Context) {
	count, err := h.collectionService.Count(c.Request.Context(), c.Query("userId"))
	if err != nil {
		h.abortCollectionError(c, err, "Failed to count collections.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// abortCollectionError maps the shared precondition ladder onto HTTP codes.
func (h *CollectionHandler) abortCollectionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUserIDMissing):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAssetNotFound):
		abortWithError(c, http.StatusNotFound, "Asset not found")
	case errors.Is(err, service.ErrAccessDenied):
		abortWithError(c, http.StatusForbidden, "Access denied")
	default:
		log.Printf("ERROR: Collection operation failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
