package dto

import "placement_backend/internal/models"

// RegisterCompanyRequest creates a company account with its profile in one
// step. TPO only.
type RegisterCompanyRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"companyName" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type CompanyResponse struct {
	User    UserResponse           `json:"user"`
	Profile *models.CompanyProfile `json:"profile,omitempty"`
}
