package services

import (
	"encoding/json"
	"fmt"

	"artisanhub/internal/logger"
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
	"artisanhub/internal/services/dto"
	"artisanhub/pkg/apperrors"

	"gorm.io/datatypes"
)

type NotificationService interface {
	GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)

	// Factory methods for domain events. All of them are best-effort:
	// the write happens after the triggering action has persisted and a
	// failure is logged, never propagated to the caller's request.
	NotifyNewMessage(recipientID, senderName, messageID string)
	NotifyNewApplication(ownerID, jobID, applicationID, artisanName string)
	NotifyApplicationStatus(artisanID, jobTitle string, status models.ApplicationStatus)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *buildNotificationResponse(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          criteria.Page,
		PageSize:      criteria.PageSize,
	}, nil
}

// MarkAsRead flips the read flag on the user's own notification. A repeat
// call is a no-op. A notification belonging to another user is reported
// as not found rather than forbidden, so the endpoint does not reveal
// other users' notification IDs.
func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notifications", "Notification not found")
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.NewNotFoundError("notifications", "Notification not found")
	}

	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

// ---------------- Factory methods ----------------

func (s *NotificationServiceImpl) NotifyNewMessage(recipientID, senderName, messageID string) {
	data, _ := json.Marshal(map[string]interface{}{
		"message_id": messageID,
		"sender":     senderName,
	})

	s.create(&models.Notification{
		UserID:  recipientID,
		Type:    repositories.NotificationTypeNewMessage,
		Title:   "New message",
		Message: fmt.Sprintf("You have a new message from %s", senderName),
		URL:     "/messages",
		Data:    datatypes.JSON(data),
	})
}

func (s *NotificationServiceImpl) NotifyNewApplication(ownerID, jobID, applicationID, artisanName string) {
	data, _ := json.Marshal(map[string]interface{}{
		"job_id":         jobID,
		"application_id": applicationID,
		"artisan_name":   artisanName,
	})

	s.create(&models.Notification{
		UserID:  ownerID,
		Type:    repositories.NotificationTypeNewApplication,
		Title:   "New job application",
		Message: fmt.Sprintf("%s applied to your job", artisanName),
		URL:     "/jobs/" + jobID,
		Data:    datatypes.JSON(data),
	})
}

func (s *NotificationServiceImpl) NotifyApplicationStatus(artisanID, jobTitle string, status models.ApplicationStatus) {
	var title, message string
	switch status {
	case models.ApplicationStatusAccepted:
		title = "Application accepted"
		message = fmt.Sprintf("Your application for '%s' was accepted", jobTitle)
	case models.ApplicationStatusRejected:
		title = "Application rejected"
		message = fmt.Sprintf("Your application for '%s' was rejected", jobTitle)
	default:
		return
	}

	s.create(&models.Notification{
		UserID:  artisanID,
		Type:    repositories.NotificationTypeApplicationStatus,
		Title:   title,
		Message: message,
		URL:     "/applications",
	})
}

// create persists a notification best-effort. The triggering action has
// already committed by the time this runs; a failure here only loses the
// notification, never the action.
func (s *NotificationServiceImpl) create(notification *models.Notification) {
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Error("notification write failed",
			"user_id", notification.UserID,
			"type", notification.Type,
			"error", err,
		)
	}
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	var data map[string]interface{}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}

	return &dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		URL:       n.URL,
		Data:      data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
