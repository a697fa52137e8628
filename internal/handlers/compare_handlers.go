package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/services"
)

// CompareHandler handles the single-fund performance view and fund comparison
type CompareHandler struct {
	sessionDeps
	comparisonSvc *services.ComparisonService
}

// NewCompareHandler creates a new CompareHandler
func NewCompareHandler(datasets *services.DatasetService, sessions *services.SessionStore, comparisonSvc *services.ComparisonService) *CompareHandler {
	return &CompareHandler{
		sessionDeps:   sessionDeps{datasets: datasets, sessions: sessions},
		comparisonSvc: comparisonSvc,
	}
}

// SelectPerformance handles PUT /api/session/performance
// @Summary Select a fund for the performance view
// @Description Changing the fund resets the period to "3 Years" unless a period is given
// @Tags performance
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body models.UpdatePerformanceRequest true "Fund and period"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/performance [put]
func (h *CompareHandler) SelectPerformance(c *gin.Context) {
	_, id, state, ok := h.begin(c)
	if !ok {
		return
	}

	var req models.UpdatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	state.Performance.Select(req.Fund)
	if req.Period != "" {
		state.Performance.Period = req.Period
	}
	if !h.save(c, id, state) {
		return
	}
	c.JSON(http.StatusOK, models.SessionResponse{SessionID: id, State: *state})
}

// Performance handles GET /api/performance
// @Summary Performance of the selected fund
// @Description Full return series of the selected fund and the value for the selected period
// @Tags performance
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.FundPerformanceResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/performance [get]
func (h *CompareHandler) Performance(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	services.ForwardWarnings(ctx, ds.Warnings)
	resp := services.NewPerformanceService(ds.Performance).FundPerformance(state.Performance)
	resp.Warnings = wc.GetWarnings()
	c.JSON(http.StatusOK, resp)
}

// SelectComparison handles PUT /api/session/comparison
// @Summary Select funds to compare
// @Description Funds outside the session's filtered view are dropped; an empty period selects the default
// @Tags comparison
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body models.UpdateComparisonRequest true "Funds and period"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/session/comparison [put]
func (h *CompareHandler) SelectComparison(c *gin.Context) {
	ds, id, state, ok := h.begin(c)
	if !ok {
		return
	}

	var req models.UpdateComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}
	h.comparisonSvc.Select(ds, state, req)
	if !h.save(c, id, state) {
		return
	}
	c.JSON(http.StatusOK, models.SessionResponse{SessionID: id, State: *state})
}

// Compare handles GET /api/comparison
// @Summary Compare the selected funds
// @Description Best and worst performer for the comparison period, chart series and detailed table
// @Tags comparison
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.ComparisonResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/comparison [get]
func (h *CompareHandler) Compare(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp := h.comparisonSvc.Compare(ctx, ds, state)
	resp.Warnings = wc.GetWarnings()
	c.JSON(http.StatusOK, resp)
}

// Candidates handles GET /api/comparison/candidates
// @Summary Funds available for comparison
// @Tags comparison
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.CandidatesResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/comparison/candidates [get]
func (h *CompareHandler) Candidates(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.CandidatesResponse{Funds: h.comparisonSvc.Candidates(ds, state)})
}
