package services

import (
	"errors"
	"time"

	"placement_backend/internal/email"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// JobService manages job postings. A posting stays hidden from students
// until a TPO verifies it.
type JobService struct {
	jobRepo       repositories.JobRepository
	profileRepo   repositories.ProfileRepository
	notifications *NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notifications *NotificationService,
) *JobService {
	return &JobService{
		jobRepo:       jobRepo,
		profileRepo:   profileRepo,
		notifications: notifications,
	}
}

// Create registers a new posting for the calling company. It starts
// unverified and invisible to students.
func (s *JobService) Create(companyUserID string, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		CompanyID:           companyUserID,
		JobTitle:            req.JobTitle,
		Description:         req.Description,
		Location:            req.Location,
		ImgURL:              req.ImgURL,
		Salary:              req.Salary,
		PostedDate:          time.Now(),
		ApplicationDeadline: req.ApplicationDeadline,
		Active:              true,
		Verified:            false,
		Degree:              req.Degree,
		MinCGPA:             req.MinCGPA,
		MinExperienceMonths: req.MinExperienceMonths,
	}

	for _, name := range req.Branches {
		job.Branches = append(job.Branches, models.JobBranch{BranchName: name})
	}
	for _, name := range req.Skills {
		job.Skills = append(job.Skills, models.JobSkill{SkillName: name})
	}
	for _, step := range req.ProcessSteps {
		job.ProcessSteps = append(job.ProcessSteps, models.ProcessStep{
			StepNumber:      step.StepNumber,
			StepName:        step.StepName,
			Description:     step.Description,
			FromDate:        step.FromDate,
			TillDate:        step.TillDate,
			Location:        step.Location,
			DurationMinutes: step.DurationMinutes,
		})
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return job, nil
}

// Get returns a posting with branches, skills and process steps.
func (s *JobService) Get(jobID string) (*models.JobPosting, error) {
	return s.findJob(jobID)
}

// Update modifies a posting. Only the owning company may update; editing
// clears verification so the TPO reviews the change.
func (s *JobService) Update(actorID, jobID string, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != actorID {
		return nil, apperrors.ErrNotJobOwner
	}

	if req.JobTitle != nil {
		job.JobTitle = *req.JobTitle
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.ImgURL != nil {
		job.ImgURL = *req.ImgURL
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Active != nil {
		job.Active = *req.Active
	}
	if req.Degree != nil {
		job.Degree = *req.Degree
	}
	if req.MinCGPA != nil {
		job.MinCGPA = req.MinCGPA
	}
	if req.MinExperienceMonths != nil {
		job.MinExperienceMonths = req.MinExperienceMonths
	}
	job.Verified = false

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return job, nil
}

// Verify sets a posting's verified flag. TPO only (enforced at the route).
// The owning company is notified when verification is granted.
func (s *JobService) Verify(jobID string, verified bool) (*models.JobPosting, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateVerified(jobID, verified); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	job.Verified = verified

	if verified {
		companyName := s.companyName(job.CompanyID)
		_ = s.notifications.Notify(job.CompanyID,
			"Job posting verified",
			"Your posting \""+job.JobTitle+"\" is now visible to students.",
			email.TemplateJobVerified,
			email.TemplateData{"Name": companyName, "JobTitle": job.JobTitle},
		)
	}
	return job, nil
}

// Delete removes a posting. The owning company or a TPO may delete.
func (s *JobService) Delete(actorID string, actorRole models.UserRole, jobID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if job.CompanyID != actorID && actorRole != models.UserRoleTPO {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

// ListOpen returns active verified postings, optionally filtered.
func (s *JobService) ListOpen(query *dto.JobListQuery) ([]models.JobPosting, error) {
	filter := repositories.JobFilter{
		Branch:   query.Branch,
		Degree:   query.Degree,
		Location: query.Location,
		MaxCGPA:  query.MaxCGPA,
		Open:     true,
	}

	jobs, err := s.jobRepo.ListMatching(filter)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return jobs, nil
}

// ListByCompany returns every posting of one company, verified or not.
func (s *JobService) ListByCompany(companyID string) ([]models.JobPosting, error) {
	jobs, err := s.jobRepo.ListByCompany(companyID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return jobs, nil
}

func (s *JobService) findJob(jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return job, nil
}

func (s *JobService) companyName(companyUserID string) string {
	profile, err := s.profileRepo.FindCompanyProfile(companyUserID)
	if err != nil {
		return "there"
	}
	return profile.CompanyName
}
