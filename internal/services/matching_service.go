package services

import (
	"errors"

	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/pkg/apperrors"
)

// MatchingService selects open postings a student is eligible for, based
// on the education fields of their profile.
type MatchingService struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewMatchingService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) *MatchingService {
	return &MatchingService{jobRepo: jobRepo, profileRepo: profileRepo}
}

// MatchingJobs returns active verified postings matching the student's
// branch and degree whose CGPA cutoff the student clears. A student
// without a saved profile matches nothing.
func (s *MatchingService) MatchingJobs(studentID string) ([]models.JobPosting, error) {
	profile, err := s.profileRepo.FindStudentProfile(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return []models.JobPosting{}, nil
		}
		return nil, apperrors.PersistenceError(err)
	}

	filter := repositories.JobFilter{
		Branch: profile.Branch,
		Degree: profile.Degree,
		Open:   true,
	}
	if profile.CGPA > 0 {
		cgpa := profile.CGPA
		filter.MaxCGPA = &cgpa
	}

	jobs, err := s.jobRepo.ListMatching(filter)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return jobs, nil
}
