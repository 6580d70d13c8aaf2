package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		// Student routes
		applications.POST("", middleware.RoleMiddleware(models.UserRoleStudent), h.Apply)
		applications.GET("/my-applications", middleware.RoleMiddleware(models.UserRoleStudent), h.MyApplications)

		// Company / TPO routes
		applications.GET("/jobs/:jobId", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleTPO), h.ListByJob)
		applications.PATCH("/:id/status", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleTPO), h.UpdateStatus)
		applications.POST("/:id/complete-step", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleTPO), h.CompleteStep)

		// Common
		applications.GET("/:id", h.Get)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(studentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	apps, err := h.applicationService.MyApplications(studentID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID := c.Param("jobId")

	var query dto.ApplicationListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	apps, err := h.applicationService.ListByJob(actorID, middleware.GetRole(c), jobID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID := c.Param("id")

	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.SetStatusFlag(actorID, middleware.GetRole(c), applicationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) CompleteStep(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID := c.Param("id")

	var req dto.CompleteStepRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	completion, err := h.applicationService.RecordStepCompletion(actorID, middleware.GetRole(c), applicationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, completion)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID := c.Param("id")

	app, err := h.applicationService.Get(actorID, middleware.GetRole(c), applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}
