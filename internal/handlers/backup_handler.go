package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// BackupHandler handles snapshot and restore requests
type BackupHandler struct {
	store store.BackupStorer
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(s store.BackupStorer) *BackupHandler {
	return &BackupHandler{store: s}
}

// CreateBackupRequest represents the request payload for creating a backup
type CreateBackupRequest struct {
	Type models.BackupType `json:"type" binding:"omitempty,backup_type"`
}

// CreateBackup captures a manual snapshot of every collection
// @Summary     Create a backup
// @Description Snapshot every collection; the oldest backups are evicted past the retention limit
// @Tags        backups
// @Accept      json
// @Produce     json
// @Param       request body CreateBackupRequest false "Backup details"
// @Success     201 {object} models.Backup "Backup created"
// @Router      /backups [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	req := CreateBackupRequest{Type: models.BackupTypeManual}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		if req.Type == "" {
			req.Type = models.BackupTypeManual
		}
	}

	backup, err := h.store.CreateBackup(req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"backup": backup})
}

// ListBackups retrieves every backup, newest first
// @Summary     List backups
// @Tags        backups
// @Produce     json
// @Success     200 {array} models.Backup "List of backups"
// @Router      /backups [get]
func (h *BackupHandler) ListBackups(c *gin.Context) {
	backups, err := h.store.ListBackups()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"backups": backups})
}

// GetBackup retrieves a backup by id
// @Summary     Get backup by ID
// @Tags        backups
// @Produce     json
// @Param       id path string true "Backup ID"
// @Success     200 {object} models.Backup "Backup"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /backups/{id} [get]
func (h *BackupHandler) GetBackup(c *gin.Context) {
	backup, err := h.store.GetBackup(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"backup": backup})
}

// DeleteBackup removes a backup by id
// @Summary     Delete a backup
// @Tags        backups
// @Param       id path string true "Backup ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /backups/{id} [delete]
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	if err := h.store.DeleteBackup(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreBackup replaces every collection with the backup's captured payload
// @Summary     Restore a backup
// @Description Import the backup's captured payload; an auto backup of the current state is taken first
// @Tags        backups
// @Param       id path string true "Backup ID"
// @Success     200 {object} map[string]string "Restored"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /backups/{id}/restore [post]
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	if err := h.store.RestoreBackup(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "backup restored"})
}
