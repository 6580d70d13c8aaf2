package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleTPO))
	{
		analytics.GET("/overview", h.Overview)
	}
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsService.Overview()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
