package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/store"
)

// ExportHandler handles full-database export and import requests
type ExportHandler struct {
	store store.Porter
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(s store.Porter) *ExportHandler {
	return &ExportHandler{store: s}
}

// Export dumps every collection
// @Summary     Export all data
// @Tags        export
// @Produce     json
// @Success     200 {object} store.ExportPayload "Export payload"
// @Router      /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	payload, err := h.store.ExportData()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// Import replaces every collection present in the payload
// @Summary     Import data
// @Description Destructively replace collections from an export payload; an auto backup is taken first
// @Tags        export
// @Accept      json
// @Param       payload body store.ExportPayload true "Export payload"
// @Success     200 {object} map[string]string "Imported"
// @Failure     400 {object} ErrorResponse "Invalid format"
// @Router      /import [post]
func (h *ExportHandler) Import(c *gin.Context) {
	var payload store.ExportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidFormat, err))
		return
	}

	if err := h.store.ImportData(&payload); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data imported"})
}
