package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/epeers/fundsdash/docs"
	"github.com/epeers/fundsdash/internal/middleware"
	"github.com/epeers/fundsdash/internal/services"
)

// Deps are the services the HTTP API is built on
type Deps struct {
	Datasets   *services.DatasetService
	Sessions   *services.SessionStore
	Dashboard  *services.DashboardService
	Comparison *services.ComparisonService
	// SessionCookie names the cookie carrying the session id
	SessionCookie string
	// SessionTTL is the idle lifetime of a session and its cookie
	SessionTTL time.Duration
}

// NewRouter wires every route onto a gin engine
func NewRouter(d Deps) *gin.Engine {
	dashboardHandler := NewDashboardHandler(d.Datasets, d.Sessions, d.Dashboard)
	analyticsHandler := NewAnalyticsHandler(d.Datasets, d.Sessions, d.Dashboard)
	compareHandler := NewCompareHandler(d.Datasets, d.Sessions, d.Comparison)
	adminHandler := NewAdminHandler(d.Datasets, d.Sessions)

	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes
	admin := router.Group("/admin")
	admin.GET("/status", adminHandler.Status)
	admin.POST("/refresh", adminHandler.Refresh)

	api := router.Group("/api")
	api.Use(middleware.Session(d.SessionCookie, d.SessionTTL))

	// Session routes
	api.GET("/session", dashboardHandler.GetSession)
	api.POST("/session/reset", dashboardHandler.Reset)
	api.PUT("/session/filters", dashboardHandler.UpdateFilters)
	api.PUT("/session/sort", dashboardHandler.UpdateSort)
	api.PUT("/session/page", dashboardHandler.SetPage)
	api.POST("/session/page/next", dashboardHandler.NextPage)
	api.POST("/session/page/prev", dashboardHandler.PrevPage)
	api.PUT("/session/performance", compareHandler.SelectPerformance)
	api.PUT("/session/comparison", compareHandler.SelectComparison)

	// Fund table routes
	api.GET("/funds", dashboardHandler.ListFunds)
	api.GET("/funds/export", dashboardHandler.Export)
	api.GET("/filters/options", dashboardHandler.FilterOptions)

	// Analytics routes
	api.GET("/analytics", analyticsHandler.Analytics)
	api.GET("/analytics/risk", analyticsHandler.RiskStats)
	api.GET("/analytics/top", analyticsHandler.TopFunds)

	// Performance and comparison routes
	api.GET("/performance", compareHandler.Performance)
	api.GET("/comparison", compareHandler.Compare)
	api.GET("/comparison/candidates", compareHandler.Candidates)

	return router
}
