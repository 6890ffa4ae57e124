package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/handlers/health"
)

func HealthRoutes(r *gin.Engine, h *health.Handler) {
	r.GET("/health", h.HandleHealth)
}
