package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-planner/internal/domain"
	"fitness-planner/internal/service"
)

// MediaHandler holds the media service dependency.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// ListMedia handles GET /api/media.
func (h *MediaHandler) ListMedia(c *gin.Context) {
	media, err := h.mediaService.ListMedia(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve media.")
		return
	}
	if media == nil {
		media = []domain.Media{}
	}
	c.JSON(http.StatusOK, gin.H{"media": media})
}

// CreateMedia handles POST /api/media. The payload arrives already encoded
// as an inline data URI; the server only assigns the identifier and stores it.
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var media domain.Media
	if err := c.ShouldBindJSON(&media); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid media payload: "+err.Error())
		return
	}
	media.ID = ""

	created, err := h.mediaService.CreateMedia(c.Request.Context(), media)
	if err != nil {
		if errors.Is(err, service.ErrMediaValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create media.")
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteMedia handles DELETE /api/media?id=. Deleting an id that is already
// gone still reports success.
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "Missing media id.")
		return
	}

	if err := h.mediaService.DeleteMedia(c.Request.Context(), id); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete media.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "media deleted"})
}
