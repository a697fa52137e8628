package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/repository"
	"github.com/epeers/fundsdash/internal/services"
)

// ExportFileName is the download name of the filtered CSV
const ExportFileName = "filtered_funds.csv"

// DashboardHandler handles the fund table, its filters, sorting and paging
type DashboardHandler struct {
	sessionDeps
	dashboard *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(datasets *services.DatasetService, sessions *services.SessionStore, dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		sessionDeps: sessionDeps{datasets: datasets, sessions: sessions},
		dashboard:   dashboard,
	}
}

// respondState saves the state and returns it
func (h *DashboardHandler) respondState(c *gin.Context, id string, state *models.SessionState, warnings []models.Warning) {
	if !h.save(c, id, state) {
		return
	}
	c.JSON(http.StatusOK, models.SessionResponse{SessionID: id, State: *state, Warnings: warnings})
}

// GetSession handles GET /api/session
// @Summary Get session state
// @Description Returns the filters, sort order and selections of the current session
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.SessionResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session [get]
func (h *DashboardHandler) GetSession(c *gin.Context) {
	_, id, state, ok := h.begin(c)
	if !ok {
		return
	}
	h.respondState(c, id, state, nil)
}

// Reset handles POST /api/session/reset
// @Summary Clear all filters
// @Description Restores every filter to its default and returns to page 1
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.SessionResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/reset [post]
func (h *DashboardHandler) Reset(c *gin.Context) {
	ds, id, state, ok := h.begin(c)
	if !ok {
		return
	}
	h.dashboard.Reset(ds, state)
	h.respondState(c, id, state, nil)
}

// UpdateFilters handles PUT /api/session/filters
// @Summary Update filters
// @Description Applies a partial filter update; omitted fields keep their value
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body models.UpdateFiltersRequest true "Filter changes"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/filters [put]
func (h *DashboardHandler) UpdateFilters(c *gin.Context) {
	_, id, state, ok := h.begin(c)
	if !ok {
		return
	}

	var req models.UpdateFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.dashboard.UpdateFilters(state, req); err != nil {
		writeBadRequest(c, err)
		return
	}
	h.respondState(c, id, state, nil)
}

// UpdateSort handles PUT /api/session/sort
// @Summary Change sort order
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body models.UpdateSortRequest true "Sort column and direction"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/sort [put]
func (h *DashboardHandler) UpdateSort(c *gin.Context) {
	ds, id, state, ok := h.begin(c)
	if !ok {
		return
	}

	var req models.UpdateSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.dashboard.SetSort(ds, state, req); err != nil {
		writeBadRequest(c, err)
		return
	}
	h.respondState(c, id, state, nil)
}

// SetPage handles PUT /api/session/page
// @Summary Jump to a page
// @Description Pages past the end are clamped to the last page on the next render
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body models.UpdatePageRequest true "Page number"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/page [put]
func (h *DashboardHandler) SetPage(c *gin.Context) {
	_, id, state, ok := h.begin(c)
	if !ok {
		return
	}

	var req models.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	if err := h.dashboard.SetPage(state, req.Page); err != nil {
		writeBadRequest(c, err)
		return
	}
	h.respondState(c, id, state, nil)
}

// NextPage handles POST /api/session/page/next
// @Summary Go to the next page
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.SessionResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/page/next [post]
func (h *DashboardHandler) NextPage(c *gin.Context) {
	ds, id, state, ok := h.begin(c)
	if !ok {
		return
	}
	var warnings []models.Warning
	if !h.dashboard.NextPage(ds, state) {
		warnings = append(warnings, models.Warning{Code: models.WarnLastPage, Message: "Already on last page"})
	}
	h.respondState(c, id, state, warnings)
}

// PrevPage handles POST /api/session/page/prev
// @Summary Go to the previous page
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.SessionResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/page/prev [post]
func (h *DashboardHandler) PrevPage(c *gin.Context) {
	ds, id, state, ok := h.begin(c)
	if !ok {
		return
	}
	var warnings []models.Warning
	if !h.dashboard.PrevPage(ds, state) {
		warnings = append(warnings, models.Warning{Code: models.WarnFirstPage, Message: "Already on first page"})
	}
	h.respondState(c, id, state, warnings)
}

// ListFunds handles GET /api/funds
// @Summary Current page of funds
// @Description Filters, sorts and paginates the fund table for the session
// @Tags funds
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.FundPageResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/funds [get]
func (h *DashboardHandler) ListFunds(c *gin.Context) {
	ds, id, state, ok := h.begin(c)
	if !ok {
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp := h.dashboard.Page(ctx, ds, state)
	resp.Warnings = wc.GetWarnings()

	// the page may have been clamped
	if !h.save(c, id, state) {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export handles GET /api/funds/export
// @Summary Download the filtered funds
// @Description All rows and columns of the filtered, sorted view as CSV
// @Tags funds
// @Produce text/csv
// @Param X-Session-ID header string false "Session id"
// @Success 200 {file} file
// @Failure 503 {object} models.ErrorResponse
// @Router /api/funds/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}

	view := h.dashboard.Export(ds, state)
	c.Header("Content-Disposition", "attachment; filename=\""+ExportFileName+"\"")
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := repository.WriteTableCSV(c.Writer, ds.Table, view); err != nil {
		log.Errorf("Failed to write export: %v", err)
	}
}

// FilterOptions handles GET /api/filters/options
// @Summary Filter choices
// @Description Selectable categories, companies and risk levels plus the NAV range
// @Tags funds
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.FilterOptionsResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/filters/options [get]
func (h *DashboardHandler) FilterOptions(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp := h.dashboard.Options(ctx, ds, state)
	resp.Warnings = wc.GetWarnings()
	c.JSON(http.StatusOK, resp)
}
