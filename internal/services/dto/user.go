package dto

import (
	"time"

	"placement_backend/internal/models"
)

// --- User Responses ---

type UserResponse struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Role         models.UserRole   `json:"role"`
	Status       models.UserStatus `json:"status"`
	ProfileImage string            `json:"profileImage,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func UserFromModel(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
		Status:       user.Status,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

// ComposedProfileResponse is the full profile view a dashboard renders in
// one request. It is the unit the profile cache stores.
type ComposedProfileResponse struct {
	User                UserResponse               `json:"user"`
	StudentProfile      *models.StudentProfile     `json:"studentProfile,omitempty"`
	CompanyProfile      *models.CompanyProfile     `json:"companyProfile,omitempty"`
	Skills              []models.UserSkill         `json:"skills,omitempty"`
	Experiences         []models.Experience        `json:"experiences,omitempty"`
	Projects            []models.UserProject       `json:"projects,omitempty"`
	Certifications      []models.Certification     `json:"certifications,omitempty"`
	InterestedRoles     []models.InterestedRole    `json:"interestedRoles,omitempty"`
	InterestedCompanies []models.InterestedCompany `json:"interestedCompanies,omitempty"`
	Resumes             []models.Resume            `json:"resumes,omitempty"`
}

func ComposedProfileFromModel(user *models.User) ComposedProfileResponse {
	return ComposedProfileResponse{
		User:                UserFromModel(user),
		StudentProfile:      user.StudentProfile,
		CompanyProfile:      user.CompanyProfile,
		Skills:              user.Skills,
		Experiences:         user.Experiences,
		Projects:            user.Projects,
		Certifications:      user.Certifications,
		InterestedRoles:     user.InterestedRoles,
		InterestedCompanies: user.InterestedCompanies,
		Resumes:             user.Resumes,
	}
}

// --- User Requests ---

type UpdateUserRequest struct {
	ProfileImage *string `json:"profileImage,omitempty" validate:"omitempty,url"`
}
