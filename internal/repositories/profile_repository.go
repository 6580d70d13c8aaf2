package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository covers student and company profiles plus the profile
// sub-collections (skills, experiences, projects, certifications,
// interests).
type ProfileRepository interface {
	// Student profile
	FindStudentProfile(userID string) (*models.StudentProfile, error)
	UpsertStudentProfile(profile *models.StudentProfile) error

	// Company profile
	FindCompanyProfile(userID string) (*models.CompanyProfile, error)
	FindCompanyProfileByID(id string) (*models.CompanyProfile, error)
	ListCompanyProfiles() ([]models.CompanyProfile, error)
	CreateCompanyProfile(profile *models.CompanyProfile) error
	UpdateCompanyProfile(profile *models.CompanyProfile) error

	// Profile sub-collections
	AddSkill(skill *models.UserSkill) error
	DeleteSkill(userID, skillID string) error
	AddExperience(exp *models.Experience) error
	DeleteExperience(userID, expID string) error
	AddProject(project *models.UserProject) error
	DeleteProject(userID, projectID string) error
	AddCertification(cert *models.Certification) error
	FindCertification(certID string) (*models.Certification, error)
	ListCertifications(userID string) ([]models.Certification, error)
	DeleteCertification(userID, certID string) error
	AddInterestedRole(role *models.InterestedRole) error
	AddInterestedCompany(company *models.InterestedCompany) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindStudentProfile(userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpsertStudentProfile(profile *models.StudentProfile) error {
	var existing models.StudentProfile
	err := r.db.First(&existing, "user_id = ?", profile.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) FindCompanyProfile(userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCompanyProfileByID(id string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) ListCompanyProfiles() ([]models.CompanyProfile, error) {
	var profiles []models.CompanyProfile
	err := r.db.Order("company_name ASC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) CreateCompanyProfile(profile *models.CompanyProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateCompanyProfile(profile *models.CompanyProfile) error {
	return r.db.Save(profile).Error
}

// Profile sub-collections. Deletes are scoped by user id so nobody removes
// another student's records.

func (r *ProfileRepositoryImpl) AddSkill(skill *models.UserSkill) error {
	return r.db.Create(skill).Error
}

func (r *ProfileRepositoryImpl) DeleteSkill(userID, skillID string) error {
	return r.deleteOwned(&models.UserSkill{}, userID, skillID)
}

func (r *ProfileRepositoryImpl) AddExperience(exp *models.Experience) error {
	return r.db.Create(exp).Error
}

func (r *ProfileRepositoryImpl) DeleteExperience(userID, expID string) error {
	return r.deleteOwned(&models.Experience{}, userID, expID)
}

func (r *ProfileRepositoryImpl) AddProject(project *models.UserProject) error {
	return r.db.Create(project).Error
}

func (r *ProfileRepositoryImpl) DeleteProject(userID, projectID string) error {
	return r.deleteOwned(&models.UserProject{}, userID, projectID)
}

func (r *ProfileRepositoryImpl) AddCertification(cert *models.Certification) error {
	return r.db.Create(cert).Error
}

func (r *ProfileRepositoryImpl) FindCertification(certID string) (*models.Certification, error) {
	var cert models.Certification
	err := r.db.First(&cert, "id = ?", certID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *ProfileRepositoryImpl) ListCertifications(userID string) ([]models.Certification, error) {
	var certs []models.Certification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&certs).Error
	return certs, err
}

func (r *ProfileRepositoryImpl) DeleteCertification(userID, certID string) error {
	return r.deleteOwned(&models.Certification{}, userID, certID)
}

func (r *ProfileRepositoryImpl) AddInterestedRole(role *models.InterestedRole) error {
	return r.db.Create(role).Error
}

func (r *ProfileRepositoryImpl) AddInterestedCompany(company *models.InterestedCompany) error {
	return r.db.Create(company).Error
}

func (r *ProfileRepositoryImpl) deleteOwned(model interface{}, userID, id string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
