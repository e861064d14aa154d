package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/store"
)

// SettingHandler handles user-preference requests
type SettingHandler struct {
	store store.SettingStorer
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(s store.SettingStorer) *SettingHandler {
	return &SettingHandler{store: s}
}

// PutSetting stores the request body as the JSON value for a key
// @Summary     Put a setting
// @Description Store an arbitrary JSON value under the given key, replacing any existing value
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       key path string true "Setting key"
// @Param       value body object true "JSON value"
// @Success     200 {object} models.Setting "Stored setting"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /settings/{key} [put]
func (h *SettingHandler) PutSetting(c *gin.Context) {
	value, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "failed to read request body"))
		return
	}

	setting, err := h.store.PutSetting(c.Param("key"), value)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": setting})
}

// GetSetting retrieves a setting by key
// @Summary     Get a setting
// @Tags        settings
// @Produce     json
// @Param       key path string true "Setting key"
// @Success     200 {object} models.Setting "Setting"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /settings/{key} [get]
func (h *SettingHandler) GetSetting(c *gin.Context) {
	setting, err := h.store.GetSetting(c.Param("key"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": setting})
}

// ListSettings retrieves every setting
// @Summary     List settings
// @Tags        settings
// @Produce     json
// @Success     200 {array} models.Setting "List of settings"
// @Router      /settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := h.store.ListSettings()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// DeleteSetting removes a setting by key
// @Summary     Delete a setting
// @Tags        settings
// @Param       key path string true "Setting key"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /settings/{key} [delete]
func (h *SettingHandler) DeleteSetting(c *gin.Context) {
	if err := h.store.DeleteSetting(c.Param("key")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
