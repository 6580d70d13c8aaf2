package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService      *services.JobService
	matchingService *services.MatchingService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService, matchingService *services.MatchingService) *JobHandler {
	return &JobHandler{
		BaseHandler:     base,
		jobService:      jobService,
		matchingService: matchingService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		// Public listing of open postings
		jobs.GET("", h.List)

		// Student matching
		jobs.GET("/matching", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleStudent), h.Matching)

		jobs.GET("/:id", h.Get)

		// Company routes
		jobs.POST("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany), h.Create)
		jobs.PUT("/:id", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany), h.Update)
		jobs.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany, models.UserRoleTPO), h.Delete)

		// TPO verification
		jobs.PATCH("/:id/verify", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleTPO), h.Verify)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	jobs, err := h.jobService.ListOpen(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) Matching(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.matchingService.MatchingJobs(studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	companyID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(companyID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(actorID, middleware.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}

func (h *JobHandler) Verify(c *gin.Context) {
	var req dto.VerifyJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Verify(c.Param("id"), *req.Verified)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
