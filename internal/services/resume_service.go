package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"placement_backend/internal/cache"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/internal/storage"
	"placement_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadLimits bounds resume uploads.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

// ResumeService stores resume files in object storage and tracks their
// metadata.
type ResumeService struct {
	resumeRepo repositories.ResumeRepository
	store      storage.Storage
	limits     UploadLimits
	profiles   *cache.Cache[dto.ComposedProfileResponse]
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	store storage.Storage,
	limits UploadLimits,
	profiles *cache.Cache[dto.ComposedProfileResponse],
) *ResumeService {
	return &ResumeService{
		resumeRepo: resumeRepo,
		store:      store,
		limits:     limits,
		profiles:   profiles,
	}
}

// Upload validates and stores a resume for userID.
func (s *ResumeService) Upload(ctx context.Context, userID, fileName, contentType string, size int64, reader io.Reader) (*models.Resume, error) {
	if size > s.limits.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !s.typeAllowed(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	key := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), filepath.Ext(fileName))

	if err := s.store.Save(ctx, key, io.LimitReader(reader, s.limits.MaxSize), contentType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("store resume: %w", err))
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		url = ""
	}

	resume := &models.Resume{
		UserID:     userID,
		FileName:   fileName,
		StorageKey: key,
		URL:        url,
		Size:       size,
		MimeType:   contentType,
	}
	if err := s.resumeRepo.Create(resume); err != nil {
		// Keep records and objects consistent when the insert fails.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.WithError(delErr).Warn("orphaned resume object", "key", key)
		}
		return nil, apperrors.PersistenceError(err)
	}
	s.profiles.Invalidate(userID)

	return resume, nil
}

// List returns the caller's resumes.
func (s *ResumeService) List(userID string) ([]models.Resume, error) {
	resumes, err := s.resumeRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return resumes, nil
}

// DownloadURL returns a short-lived signed URL for one of the caller's
// resumes.
func (s *ResumeService) DownloadURL(ctx context.Context, userID, resumeID string) (string, error) {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.PersistenceError(err)
	}
	if resume.UserID != userID {
		return "", apperrors.NewForbiddenError("Resume belongs to another user")
	}

	url, err := s.store.GetSignedURL(ctx, resume.StorageKey, 15*time.Minute)
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("sign resume url: %w", err))
	}
	return url, nil
}

// Delete removes one of the caller's resumes, record first, then the
// stored object.
func (s *ResumeService) Delete(ctx context.Context, userID, resumeID string) error {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	if resume.UserID != userID {
		return apperrors.NewForbiddenError("Resume belongs to another user")
	}

	if err := s.resumeRepo.Delete(userID, resumeID); err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}

	if err := s.store.Delete(ctx, resume.StorageKey); err != nil {
		logger.WithError(err).Warn("orphaned resume object", "key", resume.StorageKey)
	}
	s.profiles.Invalidate(userID)

	return nil
}

func (s *ResumeService) typeAllowed(contentType string) bool {
	for _, allowed := range s.limits.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
