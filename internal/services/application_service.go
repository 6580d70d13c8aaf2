package services

import (
	"errors"
	"time"

	"placement_backend/internal/email"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ApplicationService owns the application lifecycle: applying, the six
// status flags, and the process-step completion ledger.
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	notifications   *NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	notifications *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		notifications:   notifications,
	}
}

// Apply creates an application for the calling student. The posting must
// be open (active, verified, deadline not passed) and the student must not
// have applied to it before.
func (s *ApplicationService) Apply(studentID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !job.IsOpen(time.Now()) {
		return nil, apperrors.ErrJobNotOpen
	}

	existing, err := s.applicationRepo.FindByStudentAndJob(studentID, req.JobID)
	if err != nil && !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.PersistenceError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		StudentID:       studentID,
		JobID:           req.JobID,
		ResumeID:        req.ResumeID,
		ApplicationDate: time.Now(),
		StatusApplied:   true,
	}
	if err := s.applicationRepo.Create(app); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	app.Job = job
	_ = s.notifications.Notify(studentID,
		"Application received",
		"Your application for \""+job.JobTitle+"\" has been received.",
		email.TemplateApplicationReceived,
		email.TemplateData{
			"Name":        "there",
			"JobTitle":    job.JobTitle,
			"CompanyName": s.companyName(job.CompanyID),
		},
	)

	resp := dto.ApplicationFromModel(app)
	return &resp, nil
}

// SetStatusFlag sets exactly one of the six status flags on an
// application. The field name is checked against the whitelist before
// anything is read or written; an unknown name is rejected outright. Only
// the company owning the posting or a TPO may mutate status.
func (s *ApplicationService) SetStatusFlag(actorID string, actorRole models.UserRole, applicationID string, req *dto.UpdateStatusRequest) (*dto.ApplicationResponse, error) {
	if !models.IsStatusField(req.StatusField) {
		return nil, apperrors.ErrInvalidStatusField
	}

	app, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeActor(actorID, actorRole, app.JobID); err != nil {
		return nil, err
	}

	column := models.StatusFieldColumns[req.StatusField]
	updated, err := s.applicationRepo.UpdateStatusField(applicationID, column, *req.Value)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	if *req.Value {
		s.notifyStatusChange(updated, req.StatusField)
	}

	resp := dto.ApplicationFromModel(updated)
	return &resp, nil
}

// RecordStepCompletion marks a process step as completed for an
// application. One record per (application, step): repeating the call
// returns the existing record instead of creating a duplicate. Same actor
// rule as status mutation. Completions never touch the status flags.
func (s *ApplicationService) RecordStepCompletion(actorID string, actorRole models.UserRole, applicationID string, req *dto.CompleteStepRequest) (*models.ProcessStepCompletion, error) {
	app, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeActor(actorID, actorRole, app.JobID); err != nil {
		return nil, err
	}

	step, err := s.jobRepo.FindStep(req.StepID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	if step.JobID != app.JobID {
		return nil, apperrors.NewBadRequestError("Step does not belong to the application's job posting")
	}

	existing, err := s.applicationRepo.FindCompletion(applicationID, req.StepID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrCompletionNotFound) {
		return nil, apperrors.PersistenceError(err)
	}

	completion := &models.ProcessStepCompletion{
		ApplicationID:  applicationID,
		StepID:         req.StepID,
		Status:         true,
		CompletionDate: time.Now(),
	}
	if err := s.applicationRepo.CreateCompletion(completion); err != nil {
		// A concurrent call may have inserted the row first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, findErr := s.applicationRepo.FindCompletion(applicationID, req.StepID); findErr == nil {
				return existing, nil
			}
		}
		return nil, apperrors.PersistenceError(err)
	}

	return completion, nil
}

// MyApplications returns the caller's applications with embedded
// completions and the derived stage, optionally filtered by stage.
func (s *ApplicationService) MyApplications(studentID string, query *dto.ApplicationListQuery) ([]dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.ListByStudent(studentID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return filterByStage(dto.ApplicationsFromModels(apps), query.Stage), nil
}

// ListByJob returns the applications for one posting. Only the owning
// company or a TPO may list them.
func (s *ApplicationService) ListByJob(actorID string, actorRole models.UserRole, jobID string, query *dto.ApplicationListQuery) ([]dto.ApplicationResponse, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	if err := s.authorizeActor(actorID, actorRole, jobID); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return filterByStage(dto.ApplicationsFromModels(apps), query.Stage), nil
}

// Get returns one application. The applicant, the posting owner and TPOs
// may read it.
func (s *ApplicationService) Get(actorID string, actorRole models.UserRole, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}

	if app.StudentID != actorID {
		if err := s.authorizeActor(actorID, actorRole, app.JobID); err != nil {
			return nil, err
		}
	}

	resp := dto.ApplicationFromModel(app)
	return &resp, nil
}

func (s *ApplicationService) findApplication(applicationID string) (*models.Application, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return app, nil
}

// authorizeActor admits the company owning jobID and any TPO.
func (s *ApplicationService) authorizeActor(actorID string, actorRole models.UserRole, jobID string) error {
	if actorRole == models.UserRoleTPO {
		return nil
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.PersistenceError(err)
	}
	if job.CompanyID != actorID {
		return apperrors.ErrNotApplicationOwner
	}
	return nil
}

var statusChangeText = map[string]string{
	models.FieldStatusShortlisted:        "you have been shortlisted",
	models.FieldStatusInterviewScheduled: "an interview has been scheduled",
	models.FieldStatusTechnicalRound:     "you advanced to the technical round",
	models.FieldStatusOfferMade:          "you received an offer",
	models.FieldStatusOfferAccepted:      "your offer acceptance was recorded",
}

func (s *ApplicationService) notifyStatusChange(app *models.Application, field string) {
	text, ok := statusChangeText[field]
	if !ok {
		return
	}

	jobTitle := ""
	companyName := ""
	if job, err := s.jobRepo.FindByID(app.JobID); err == nil {
		jobTitle = job.JobTitle
		companyName = s.companyName(job.CompanyID)
	}

	_ = s.notifications.Notify(app.StudentID,
		"Application update",
		"Update on your application for \""+jobTitle+"\": "+text+".",
		email.TemplateStatusChanged,
		email.TemplateData{
			"Name":        "there",
			"JobTitle":    jobTitle,
			"CompanyName": companyName,
			"StatusText":  text,
		},
	)
}

func (s *ApplicationService) companyName(companyUserID string) string {
	profile, err := s.profileRepo.FindCompanyProfile(companyUserID)
	if err != nil {
		return ""
	}
	return profile.CompanyName
}

func filterByStage(apps []dto.ApplicationResponse, stage string) []dto.ApplicationResponse {
	if stage == "" {
		return apps
	}

	want := models.Stage(stage)
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		if app.Stage == want {
			out = append(out, app)
		}
	}
	return out
}
