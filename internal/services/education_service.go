package services

import (
	"errors"

	"placement_backend/internal/cache"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// EducationService exposes the education slice of a student profile and
// the certificate collection.
type EducationService struct {
	profileRepo repositories.ProfileRepository
	profiles    *cache.Cache[dto.ComposedProfileResponse]
}

func NewEducationService(
	profileRepo repositories.ProfileRepository,
	profiles *cache.Cache[dto.ComposedProfileResponse],
) *EducationService {
	return &EducationService{profileRepo: profileRepo, profiles: profiles}
}

// GetInfo returns the education fields of the caller's student profile.
// A student without a saved profile gets zero values, not a 404.
func (s *EducationService) GetInfo(userID string) (*dto.EducationInfoResponse, error) {
	profile, err := s.profileRepo.FindStudentProfile(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return &dto.EducationInfoResponse{}, nil
		}
		return nil, apperrors.PersistenceError(err)
	}

	return &dto.EducationInfoResponse{
		Degree:           profile.Degree,
		Branch:           profile.Branch,
		YearOfGraduation: profile.YearOfGraduation,
		CGPA:             profile.CGPA,
		RollNo:           profile.RollNo,
		UniversityName:   profile.UniversityName,
	}, nil
}

// UpdateInfo upserts the education fields of the caller's student profile.
func (s *EducationService) UpdateInfo(userID string, req *dto.UpdateEducationInfoRequest) (*dto.EducationInfoResponse, error) {
	profile, err := s.profileRepo.FindStudentProfile(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.PersistenceError(err)
		}
		profile = &models.StudentProfile{UserID: userID}
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

	if err := s.profileRepo.UpsertStudentProfile(profile); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)

	return &dto.EducationInfoResponse{
		Degree:           profile.Degree,
		Branch:           profile.Branch,
		YearOfGraduation: profile.YearOfGraduation,
		CGPA:             profile.CGPA,
		RollNo:           profile.RollNo,
		UniversityName:   profile.UniversityName,
	}, nil
}

// ListCertificates returns the caller's certifications.
func (s *EducationService) ListCertificates(userID string) ([]models.Certification, error) {
	certs, err := s.profileRepo.ListCertifications(userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return certs, nil
}

// AddCertificate attaches a certification to the caller's profile.
func (s *EducationService) AddCertificate(userID string, req *dto.AddCertificationRequest) (*models.Certification, error) {
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

// DeleteCertificate removes a certification the caller owns. Deleting
// another user's record 404s rather than leaking its existence.
func (s *EducationService) DeleteCertificate(userID, certID string) error {
	if err := s.profileRepo.DeleteCertification(userID, certID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)
	return nil
}
