package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	userService    *services.UserService
	profileService *services.ProfileService
	jobService     *services.JobService
}

func NewCompanyHandler(
	base *BaseHandler,
	userService *services.UserService,
	profileService *services.ProfileService,
	jobService *services.JobService,
) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		userService:    userService,
		profileService: profileService,
		jobService:     jobService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.GET("/:id/jobs", h.ListJobs)

		companies.POST("", middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleTPO), h.Register)
		companies.PUT("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCompany, models.UserRoleTPO), h.Update)
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.profileService.ListCompanies()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"total":     len(companies),
	})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.userService.GetCompany(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// ListJobs returns every posting of the company behind a profile id.
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	company, err := h.userService.GetCompany(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	jobs, err := h.jobService.ListByCompany(company.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *CompanyHandler) Register(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.userService.RegisterCompany(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.userService.UpdateCompanyByID(actorID, middleware.GetRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
