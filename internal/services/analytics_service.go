package services

import (
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// AnalyticsService builds the TPO dashboard summary. The per-stage counts
// come from the projection, not from stored state.
type AnalyticsService struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// Overview aggregates portal-wide counts.
func (s *AnalyticsService) Overview() (*dto.OverviewResponse, error) {
	students, err := s.userRepo.CountByRole(models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	companies, err := s.userRepo.CountByRole(models.UserRoleCompany)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	activeJobs, err := s.jobRepo.CountActive()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	verifiedJobs, err := s.jobRepo.CountVerified()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	completions, err := s.applicationRepo.CountCompletions()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	apps, err := s.applicationRepo.ListAll()
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	byStage := make(map[string]int64)
	for i := range apps {
		byStage[string(apps[i].Stage())]++
	}

	return &dto.OverviewResponse{
		TotalStudents:        students,
		TotalCompanies:       companies,
		ActiveJobs:           activeJobs,
		VerifiedJobs:         verifiedJobs,
		TotalApplications:    int64(len(apps)),
		ApplicationsByStage:  byStage,
		TotalStepCompletions: completions,
	}, nil
}
