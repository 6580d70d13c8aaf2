package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrCompletionNotFound  = errors.New("completion not found")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByStudentAndJob(studentID, jobID string) (*models.Application, error)
	ListByStudent(studentID string) ([]models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)
	ListAll() ([]models.Application, error)
	UpdateStatusField(id, column string, value bool) (*models.Application, error)

	// Completion ledger
	FindCompletion(applicationID, stepID string) (*models.ProcessStepCompletion, error)
	CreateCompletion(completion *models.ProcessStepCompletion) error
	CountCompletions() (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Completions").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByStudentAndJob(studentID, jobID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "student_id = ? AND job_id = ?", studentID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByStudent(studentID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Completions").
		Preload("Job").
		Where("student_id = ?", studentID).
		Order("application_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Completions").
		Where("job_id = ?", jobID).
		Order("application_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListAll() ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Completions").Find(&apps).Error
	return apps, err
}

// UpdateStatusField persists exactly one status column and returns the full
// updated record. The column must come from models.StatusFieldColumns;
// callers validate the wire name before reaching this point.
func (r *ApplicationRepositoryImpl) UpdateStatusField(id, column string, value bool) (*models.Application, error) {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.FindByID(id)
}

func (r *ApplicationRepositoryImpl) FindCompletion(applicationID, stepID string) (*models.ProcessStepCompletion, error) {
	var completion models.ProcessStepCompletion
	err := r.db.First(&completion, "application_id = ? AND step_id = ?", applicationID, stepID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompletionNotFound
		}
		return nil, err
	}
	return &completion, nil
}

func (r *ApplicationRepositoryImpl) CreateCompletion(completion *models.ProcessStepCompletion) error {
	return r.db.Create(completion).Error
}

func (r *ApplicationRepositoryImpl) CountCompletions() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProcessStepCompletion{}).Count(&count).Error
	return count, err
}
