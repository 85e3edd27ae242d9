package v1

import (
	"api/handlers/participants"
	"api/handlers/roster"
	"api/handlers/teams"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(6000, 100) // 100 requests per second, 100 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	RegisterStatsRoutes(v1)
	participants.RegisterRoutes(v1)
	teams.RegisterRoutes(v1)
	roster.RegisterRoutes(v1)

	// Register metrics and swagger endpoints
	RegisterMetricsRoutes(v1)
	RegisterSwaggerRoutes(r)
}
