package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gcbaptista/go-tab-search/internal/analytics"
	"github.com/gcbaptista/go-tab-search/internal/destination"
	"github.com/gcbaptista/go-tab-search/internal/tiering"
	"github.com/gcbaptista/go-tab-search/services"
)

// DefaultMetricsPath is where Prometheus metrics are exposed when no path is configured.
const DefaultMetricsPath = "/metrics"

// API holds dependencies for API handlers.
type API struct {
	searcher    services.TabSearcher
	analytics   *analytics.Service
	classifier  *tiering.Classifier
	destination *destination.Builder
	clock       func() time.Time
}

// NewAPI creates a new API handler structure. A nil analytics service is
// replaced by a fresh in-memory one.
func NewAPI(searcher services.TabSearcher, analyticsService *analytics.Service) *API {
	if analyticsService == nil {
		analyticsService = analytics.NewService()
	}
	settings := searcher.Settings()
	return &API{
		searcher:    searcher,
		analytics:   analyticsService,
		classifier:  tiering.NewClassifier(settings.HistoryThreshold),
		destination: destination.NewBuilder(settings.SearchURLTemplate),
		clock:       time.Now,
	}
}

// SetupRoutes defines all the API routes for the tab search server.
func SetupRoutes(router *gin.Engine, searcher services.TabSearcher, analyticsService *analytics.Service, metricsPath string) {
	apiHandler := NewAPI(searcher, analyticsService)

	if metricsPath == "" {
		metricsPath = DefaultMetricsPath
	}

	// Operational routes
	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)
	router.GET(metricsPath, gin.WrapH(promhttp.Handler()))

	// Search routes
	router.POST("/search", apiHandler.SearchHandler)
	router.POST("/multi_search", apiHandler.MultiSearchHandler)

	// Helpers used by clients around a search
	router.POST("/destination", apiHandler.DestinationHandler)
	router.POST("/classify", apiHandler.ClassifyHandler)
}

// resolveNow turns an optional millisecond timestamp into a time, using the
// API clock when absent.
func (api *API) resolveNow(ms *int64) time.Time {
	if ms == nil {
		return api.clock()
	}
	return time.UnixMilli(*ms)
}
