package services

import (
	"context"
	"errors"

	"placement_backend/internal/cache"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// ProfileService composes and mutates user profiles. Composed reads go
// through a short TTL cache; every mutation invalidates the owner's entry
// so the next read reflects the change.
type ProfileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	profiles    *cache.Cache[dto.ComposedProfileResponse]
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	profiles *cache.Cache[dto.ComposedProfileResponse],
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		profiles:    profiles,
	}
}

// GetComposedProfile returns the full profile view for userID. Within the
// cache TTL the database is not touched unless force is set.
func (s *ProfileService) GetComposedProfile(ctx context.Context, userID string, force bool) (*dto.ComposedProfileResponse, error) {
	profile, err := s.profiles.Get(ctx, userID, force, func(ctx context.Context) (dto.ComposedProfileResponse, error) {
		user, err := s.userRepo.FindByIDWithProfile(userID)
		if err != nil {
			return dto.ComposedProfileResponse{}, err
		}
		return dto.ComposedProfileFromModel(user), nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return &profile, nil
}

// UpdateUser changes top-level account fields.
func (s *ProfileService) UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)

	resp := dto.UserFromModel(user)
	return &resp, nil
}

// UpdateStudentProfile upserts the student profile section. Only student
// accounts carry one.
func (s *ProfileService) UpdateStudentProfile(userID string, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	if err := s.requireRole(userID, models.UserRoleStudent); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindStudentProfile(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.PersistenceError(err)
		}
		profile = &models.StudentProfile{UserID: userID}
	}

	applyStudentProfile(profile, req)

	if err := s.profileRepo.UpsertStudentProfile(profile); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)

	return profile, nil
}

// UpdateCompanyProfile upserts the company profile section.
func (s *ProfileService) UpdateCompanyProfile(userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	if err := s.requireRole(userID, models.UserRoleCompany); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindCompanyProfile(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.PersistenceError(err)
		}
		profile = &models.CompanyProfile{UserID: userID}
		if req.CompanyName != nil {
			profile.CompanyName = *req.CompanyName
		}
		if profile.CompanyName == "" {
			return nil, apperrors.NewBadRequestError("companyName is required for a new company profile")
		}
		applyCompanyProfile(profile, req)
		if err := s.profileRepo.CreateCompanyProfile(profile); err != nil {
			return nil, apperrors.PersistenceError(err)
		}
		s.profiles.Invalidate(userID)
		return profile, nil
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	applyCompanyProfile(profile, req)

	if err := s.profileRepo.UpdateCompanyProfile(profile); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)

	return profile, nil
}

// ListCompanies returns all company profiles, for the student-facing
// company directory.
func (s *ProfileService) ListCompanies() ([]models.CompanyProfile, error) {
	companies, err := s.profileRepo.ListCompanyProfiles()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return companies, nil
}

// --- Profile sub-collections ---

func (s *ProfileService) AddSkill(userID string, req *dto.AddSkillRequest) (*models.UserSkill, error) {
	skill := &models.UserSkill{UserID: userID, SkillName: req.SkillName}
	if err := s.profileRepo.AddSkill(skill); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return skill, nil
}

func (s *ProfileService) DeleteSkill(userID, skillID string) error {
	return s.deleteOwned(userID, func() error {
		return s.profileRepo.DeleteSkill(userID, skillID)
	})
}

func (s *ProfileService) AddExperience(userID string, req *dto.AddExperienceRequest) (*models.Experience, error) {
	exp := &models.Experience{
		UserID:      userID,
		Company:     req.Company,
		Profile:     req.Profile,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Description: req.Description,
	}
	if err := s.profileRepo.AddExperience(exp); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return exp, nil
}

func (s *ProfileService) DeleteExperience(userID, expID string) error {
	return s.deleteOwned(userID, func() error {
		return s.profileRepo.DeleteExperience(userID, expID)
	})
}

func (s *ProfileService) AddProject(userID string, req *dto.AddProjectRequest) (*models.UserProject, error) {
	project := &models.UserProject{
		UserID:      userID,
		ProjectName: req.ProjectName,
		Description: req.Description,
	}
	if err := s.profileRepo.AddProject(project); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return project, nil
}

func (s *ProfileService) DeleteProject(userID, projectID string) error {
	return s.deleteOwned(userID, func() error {
		return s.profileRepo.DeleteProject(userID, projectID)
	})
}

func (s *ProfileService) AddCertification(userID string, req *dto.AddCertificationRequest) (*models.Certification, error) {
	cert := &models.Certification{
		UserID:            userID,
		CertificationName: req.CertificationName,
		Organization:      req.Organization,
		IssueDate:         req.IssueDate,
		ExpiryDate:        req.ExpiryDate,
		CredentialID:      req.CredentialID,
	}
	if err := s.profileRepo.AddCertification(cert); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return cert, nil
}

func (s *ProfileService) DeleteCertification(userID, certID string) error {
	return s.deleteOwned(userID, func() error {
		return s.profileRepo.DeleteCertification(userID, certID)
	})
}

func (s *ProfileService) AddInterestedRole(userID string, req *dto.AddInterestedRoleRequest) (*models.InterestedRole, error) {
	role := &models.InterestedRole{UserID: userID, RoleName: req.RoleName}
	if err := s.profileRepo.AddInterestedRole(role); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return role, nil
}

func (s *ProfileService) AddInterestedCompany(userID string, req *dto.AddInterestedCompanyRequest) (*models.InterestedCompany, error) {
	company := &models.InterestedCompany{UserID: userID, CompanyName: req.CompanyName}
	if err := s.profileRepo.AddInterestedCompany(company); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return company, nil
}

// --- helpers ---

func (s *ProfileService) deleteOwned(userID string, del func() error) error {
	if err := del(); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return nil
}

func (s *ProfileService) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return user, nil
}

func (s *ProfileService) requireRole(userID string, role models.UserRole) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if user.Role != role {
		return apperrors.NewForbiddenError("Operation not allowed for this account role")
	}
	return nil
}

func applyStudentProfile(profile *models.StudentProfile, req *dto.UpdateStudentProfileRequest) {
	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.MotherName != nil {
		profile.MotherName = *req.MotherName
	}
	if req.Degree != nil {
		profile.Degree = *req.Degree
	}
	if req.Branch != nil {
		profile.Branch = *req.Branch
	}
	if req.YearOfGraduation != nil {
		profile.YearOfGraduation = *req.YearOfGraduation
	}
	if req.CGPA != nil {
		profile.CGPA = *req.CGPA
	}
	if req.RollNo != nil {
		profile.RollNo = *req.RollNo
	}
	if req.UniversityName != nil {
		profile.UniversityName = *req.UniversityName
	}
}

func applyCompanyProfile(profile *models.CompanyProfile, req *dto.UpdateCompanyProfileRequest) {
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
}
