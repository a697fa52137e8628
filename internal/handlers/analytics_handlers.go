package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/fundsdash/internal/services"
)

// AnalyticsHandler handles the analytics and by-risk views
type AnalyticsHandler struct {
	sessionDeps
	dashboard *services.DashboardService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(datasets *services.DatasetService, sessions *services.SessionStore, dashboard *services.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{
		sessionDeps: sessionDeps{datasets: datasets, sessions: sessions},
		dashboard:   dashboard,
	}
}

// Analytics handles GET /api/analytics
// @Summary Analytics of the filtered funds
// @Description Summary metrics, NAV/category/risk distributions, average NAV by risk, top funds and risk statistics
// @Tags analytics
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} models.AnalyticsResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/analytics [get]
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp := h.dashboard.Analytics(ctx, ds, state)
	resp.Warnings = wc.GetWarnings()
	c.JSON(http.StatusOK, resp)
}

// RiskStats handles GET /api/analytics/risk
// @Summary Statistics by risk level
// @Description Count and NAV mean/min/max per risk level, most populated first
// @Tags analytics
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} models.RiskStat
// @Failure 503 {object} models.ErrorResponse
// @Router /api/analytics/risk [get]
func (h *AnalyticsHandler) RiskStats(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.RiskStats(ds, state))
}

// TopFunds handles GET /api/analytics/top
// @Summary Top funds by NAV
// @Tags analytics
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} models.TopFund
// @Failure 503 {object} models.ErrorResponse
// @Router /api/analytics/top [get]
func (h *AnalyticsHandler) TopFunds(c *gin.Context) {
	ds, _, state, ok := h.begin(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.dashboard.TopFunds(ds, state))
}
