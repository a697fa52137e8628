package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/services"
)

// AdminHandler handles dataset maintenance endpoints
type AdminHandler struct {
	datasets *services.DatasetService
	sessions *services.SessionStore
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(datasets *services.DatasetService, sessions *services.SessionStore) *AdminHandler {
	return &AdminHandler{
		datasets: datasets,
		sessions: sessions,
	}
}

// Status handles GET /admin/status
// @Summary Dataset status
// @Description Source, size, resolved columns and warnings of the loaded dataset
// @Tags admin
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/status [get]
func (h *AdminHandler) Status(c *gin.Context) {
	ds, err := h.datasets.Current()
	if err != nil {
		writeDatasetError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusOf(ds, h.sessions.Len()))
}

// Refresh handles POST /admin/refresh
// @Summary Reload the dataset
// @Description Drops the file caches and re-reads the input tables
// @Tags admin
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /admin/refresh [post]
func (h *AdminHandler) Refresh(c *gin.Context) {
	if err := h.datasets.Reload(c.Request.Context()); err != nil {
		log.Warnf("Manual refresh failed: %v", err)
		writeDatasetError(c, err)
		return
	}
	h.Status(c)
}

func statusOf(ds *models.Dataset, sessions int) models.StatusResponse {
	resp := models.StatusResponse{
		Source:      ds.Source,
		Rows:        ds.Table.Len(),
		Columns:     ds.Columns,
		Performance: ds.Performance != nil,
		Periods:     []string{},
		LoadedAt:    ds.LoadedAt,
		Sessions:    sessions,
		Warnings:    ds.Warnings,
	}
	if ds.Performance != nil {
		resp.Periods = ds.Performance.Periods
	}
	return resp
}
