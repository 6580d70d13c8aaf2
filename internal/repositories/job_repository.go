package repositories

import (
	"errors"
	"time"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows the public job listing.
type JobFilter struct {
	Branch   string
	Degree   string
	MaxCGPA  *float64 // only postings whose min_cgpa is <= this value
	Location string
	Open     bool // active + verified + deadline not passed
}

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByID(id string) (*models.JobPosting, error)
	Update(job *models.JobPosting) error
	UpdateVerified(jobID string, verified bool) error
	Delete(jobID string) error
	ListOpen() ([]models.JobPosting, error)
	ListByCompany(companyID string) ([]models.JobPosting, error)
	ListMatching(filter JobFilter) ([]models.JobPosting, error)
	FindStep(stepID string) (*models.ProcessStep, error)
	CloseExpired(now time.Time) (int64, error)
	CountActive() (int64, error)
	CountVerified() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.
		Preload("Branches").
		Preload("Skills").
		Preload("ProcessSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("process_steps.step_number ASC")
		}).
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPosting) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) UpdateVerified(jobID string, verified bool) error {
	result := r.db.Model(&models.JobPosting{}).
		Where("id = ?", jobID).
		Update("verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	return r.db.Select("Branches", "Skills", "ProcessSteps").
		Delete(&models.JobPosting{BaseModel: models.BaseModel{ID: jobID}}).Error
}

func (r *JobRepositoryImpl) ListOpen() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.
		Preload("Branches").
		Preload("Skills").
		Preload("ProcessSteps").
		Where("active = ? AND verified = ?", true, true).
		Order("posted_date DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByCompany(companyID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.
		Preload("Branches").
		Preload("Skills").
		Where("company_id = ?", companyID).
		Order("posted_date DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListMatching(filter JobFilter) ([]models.JobPosting, error) {
	q := r.db.
		Preload("Branches").
		Preload("Skills").
		Preload("ProcessSteps").
		Model(&models.JobPosting{})

	if filter.Open {
		q = q.Where("active = ? AND verified = ?", true, true).
			Where("application_deadline IS NULL OR application_deadline > ?", time.Now())
	}
	if filter.Degree != "" {
		q = q.Where("degree = '' OR degree IS NULL OR degree = ?", filter.Degree)
	}
	if filter.MaxCGPA != nil {
		q = q.Where("min_cgpa IS NULL OR min_cgpa <= ?", *filter.MaxCGPA)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Branch != "" {
		q = q.Where(
			"id IN (?) OR id NOT IN (?)",
			r.db.Model(&models.JobBranch{}).Select("job_id").Where("branch_name = ?", filter.Branch),
			r.db.Model(&models.JobBranch{}).Select("job_id"),
		)
	}

	var jobs []models.JobPosting
	err := q.Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindStep(stepID string) (*models.ProcessStep, error) {
	var step models.ProcessStep
	err := r.db.First(&step, "id = ?", stepID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &step, nil
}

// CloseExpired deactivates postings whose deadline has passed. Used by the
// deadline worker.
func (r *JobRepositoryImpl) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.JobPosting{}).
		Where("active = ? AND application_deadline IS NOT NULL AND application_deadline < ?", true, now).
		Update("active", false)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobPosting{}).Where("active = ?", true).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountVerified() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobPosting{}).Where("verified = ?", true).Count(&count).Error
	return count, err
}
