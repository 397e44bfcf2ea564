package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Kamar-Folarin/repo-pulse/internal/metrics"
	"github.com/Kamar-Folarin/repo-pulse/internal/web"
)

// @title Repo Pulse API
// @version 1.0
// @description Commit activity dashboard for GitHub repositories
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the HTTP routes and middleware chain.
func SetupRouter(h *Handler, collector *metrics.Collector, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger), HTTPMetrics(collector))

	// Embedded dashboard page
	r.GET("/", gin.WrapH(web.Index()))

	// Prometheus exposition backed by the collector's private registry
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := r.Group("/api/v1")
	{
		// @Summary Refresh the commit dashboard for a repository
		// @Description Runs one fetch-and-aggregate cycle against the GitHub commits endpoint and returns the weekly series, contributor ranking and summary metrics
		// @Tags dashboard
		// @Accept json
		// @Produce json
		// @Param owner query string false "Repository owner"
		// @Param repo query string false "Repository name"
		// @Param repository query string false "owner/name shorthand or full GitHub URL, used when owner/repo are absent" example("pandas-dev/pandas")
		// @Success 200 {object} DashboardResponse
		// @Failure 400 {object} DashboardResponse
		// @Failure 404 {object} DashboardResponse
		// @Failure 502 {object} DashboardResponse
		// @Failure 500 {object} DashboardResponse
		// @Router /dashboard [get]
		v1.GET("/dashboard", h.GetDashboard)

		// @Summary Liveness probe
		// @Tags health
		// @Produce json
		// @Success 200 {object} HealthResponse
		// @Router /health [get]
		v1.GET("/health", h.HealthCheck)
	}

	return r
}
