package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	*BaseHandler
	educationService *services.EducationService
}

func NewEducationHandler(base *BaseHandler, educationService *services.EducationService) *EducationHandler {
	return &EducationHandler{BaseHandler: base, educationService: educationService}
}

func (h *EducationHandler) RegisterRoutes(r *gin.RouterGroup) {
	education := r.Group("/education")
	education.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleStudent))
	{
		education.GET("/info", h.GetInfo)
		education.PUT("/info", h.UpdateInfo)
		education.GET("/certificates", h.ListCertificates)
		education.POST("/certificates", h.AddCertificate)
		education.DELETE("/certificates/:id", h.DeleteCertificate)
	}
}

func (h *EducationHandler) GetInfo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	info, err := h.educationService.GetInfo(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *EducationHandler) UpdateInfo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEducationInfoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	info, err := h.educationService.UpdateInfo(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *EducationHandler) ListCertificates(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	certs, err := h.educationService.ListCertificates(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": certs,
		"total":        len(certs),
	})
}

func (h *EducationHandler) AddCertificate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddCertificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	cert, err := h.educationService.AddCertificate(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cert)
}

func (h *EducationHandler) DeleteCertificate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.educationService.DeleteCertificate(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Certificate removed"})
}
