package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService    *services.UserService
	profileService *services.ProfileService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, profileService *services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		userService:    userService,
		profileService: profileService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.RoleMiddleware(models.UserRoleTPO), h.ListStudents)

		users.GET("/profile", h.Profile)
		users.PUT("/profile", h.UpdateProfile)
		users.PUT("/account", h.UpdateAccount)

		users.POST("/skills", middleware.RoleMiddleware(models.UserRoleStudent), h.AddSkill)
		users.DELETE("/skills/:id", middleware.RoleMiddleware(models.UserRoleStudent), h.DeleteSkill)
		users.POST("/experiences", middleware.RoleMiddleware(models.UserRoleStudent), h.AddExperience)
		users.DELETE("/experiences/:id", middleware.RoleMiddleware(models.UserRoleStudent), h.DeleteExperience)
		users.POST("/projects", middleware.RoleMiddleware(models.UserRoleStudent), h.AddProject)
		users.DELETE("/projects/:id", middleware.RoleMiddleware(models.UserRoleStudent), h.DeleteProject)
		users.POST("/interested-roles", middleware.RoleMiddleware(models.UserRoleStudent), h.AddInterestedRole)
		users.POST("/interested-companies", middleware.RoleMiddleware(models.UserRoleStudent), h.AddInterestedCompany)
	}
}

func (h *UserHandler) ListStudents(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)
	offset := ParseQueryInt(c, "offset", 0)

	students, err := h.userService.ListStudents(limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students": students,
		"total":    len(students),
	})
}

// Profile returns the caller's composed profile. Reads inside the cache
// window are served from memory; ?refresh=true forces a database fetch.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	force := c.Query("refresh") == "true"
	profile, err := h.profileService.GetComposedProfile(c.Request.Context(), userID, force)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile dispatches on the caller's role: students edit the student
// profile section, companies the company one.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	switch middleware.GetRole(c) {
	case models.UserRoleStudent:
		var req dto.UpdateStudentProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpdateStudentProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)

	case models.UserRoleCompany:
		var req dto.UpdateCompanyProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpdateCompanyProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)

	default:
		c.JSON(http.StatusOK, gin.H{"message": "No editable profile for this role"})
	}
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.profileService.UpdateUser(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AddSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	skill, err := h.profileService.AddSkill(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

func (h *UserHandler) DeleteSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteSkill(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}

func (h *UserHandler) AddExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	exp, err := h.profileService.AddExperience(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exp)
}

func (h *UserHandler) DeleteExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteExperience(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience removed"})
}

func (h *UserHandler) AddProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.profileService.AddProject(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *UserHandler) DeleteProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProject(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project removed"})
}

func (h *UserHandler) AddInterestedRole(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddInterestedRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	role, err := h.profileService.AddInterestedRole(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

func (h *UserHandler) AddInterestedCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddInterestedCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.profileService.AddInterestedCompany(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}
