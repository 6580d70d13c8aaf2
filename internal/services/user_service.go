package services

import (
	"errors"
	"fmt"

	"placement_backend/internal/auth"
	"placement_backend/internal/cache"
	"placement_backend/internal/email"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// UserService covers the account directory and TPO-side company account
// registration.
type UserService struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	notifications *NotificationService
	profiles      *cache.Cache[dto.ComposedProfileResponse]
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notifications *NotificationService,
	profiles *cache.Cache[dto.ComposedProfileResponse],
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		notifications: notifications,
		profiles:      profiles,
	}
}

// ListStudents returns the student directory page by page. TPO only.
func (s *UserService) ListStudents(limit, offset int) ([]dto.UserResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.FindByRole(models.UserRoleStudent, limit, offset)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.UserFromModel(&users[i]))
	}
	return out, nil
}

// RegisterCompany creates a company account together with its profile.
// TPO only; companies onboarded this way skip self-registration.
func (s *UserService) RegisterCompany(req *dto.RegisterCompanyRequest) (*dto.CompanyResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("hash password: %w", err))
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleCompany,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.PersistenceError(err)
	}

	profile := &models.CompanyProfile{
		UserID:      user.ID,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		Verified:    true,
	}
	if err := s.profileRepo.CreateCompanyProfile(profile); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	_ = s.notifications.Notify(user.ID,
		"Welcome to the placement portal",
		"Your company account has been created by the placement office.",
		email.TemplateWelcome,
		email.TemplateData{"Name": req.CompanyName},
	)

	return &dto.CompanyResponse{
		User:    dto.UserFromModel(user),
		Profile: profile,
	}, nil
}

// GetCompany returns one company profile by profile id.
func (s *UserService) GetCompany(id string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfileByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return profile, nil
}

// UpdateCompanyByID edits a company profile addressed by profile id. The
// owning account or a TPO may edit it.
func (s *UserService) UpdateCompanyByID(actorID string, actorRole models.UserRole, profileID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile, err := s.GetCompany(profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != actorID && actorRole != models.UserRoleTPO {
		return nil, apperrors.NewForbiddenError("Company profile belongs to another account")
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}

	if err := s.profileRepo.UpdateCompanyProfile(profile); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(profile.UserID)

	return profile, nil
}
