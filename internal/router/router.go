package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alimentos/backend/internal/api"
	"github.com/pageza/alimentos/backend/internal/metrics"
	"github.com/pageza/alimentos/backend/internal/middleware"
	"github.com/pageza/alimentos/backend/internal/service"
)

// MetricsPath is the Prometheus scrape path
const MetricsPath = "/metrics"

// Dependencies holds everything the router needs; nothing is read from package state
type Dependencies struct {
	Alimentos service.IAlimentoService
	Logger    *logrus.Logger
	Metrics   *metrics.Metrics
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	// "/alimentos/" is unmatched, not a redirect to "/alimentos"
	router.RedirectTrailingSlash = false

	// Metrics wraps everything else so it sees the final status.
	router.Use(
		middleware.RequestID(),
		middleware.Metrics(deps.Metrics),
		middleware.Recovery(deps.Logger),
		middleware.ErrorHandler(deps.Logger),
		middleware.CORS(),
	)

	router.NoRoute(middleware.NotFound)
	router.GET(MetricsPath, gin.WrapH(deps.Metrics.Handler()))

	api.NewAlimentoHandler(deps.Alimentos, deps.Logger).RegisterRoutes(router)

	return router
}
