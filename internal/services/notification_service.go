package services

import (
	"errors"

	"placement_backend/internal/email"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/pkg/apperrors"
)

// NotificationService records in-app notifications and mirrors them to
// email when a template is given. Email delivery is best-effort; a send
// failure never fails the operation that triggered it.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	email            email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		email:            emailProvider,
	}
}

// Notify stores a notification for userID and optionally emails it using
// the named template.
func (s *NotificationService) Notify(userID, title, message, templateName string, data email.TemplateData) error {
	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return apperrors.PersistenceError(err)
	}

	if templateName == "" {
		return nil
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		logger.WithError(err).Warn("notification email skipped, user lookup failed", "user_id", userID)
		return nil
	}

	if err := s.email.SendTemplate([]string{user.Email}, title, templateName, data); err != nil {
		logger.WithError(err).Warn("notification email failed", "user_id", userID, "template", templateName)
	}
	return nil
}

// ListForUser returns the caller's notifications, newest first.
func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return notifications, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *NotificationService) MarkRead(userID, notificationID string) (*models.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(userID, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.PersistenceError(err)
	}
	return notification, nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *NotificationService) MarkAllRead(userID string) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}
