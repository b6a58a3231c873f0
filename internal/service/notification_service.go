package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// NotificationService exposes the recipient-facing notification operations.
// Creation happens inside the post and user services as a side effect of
// likes, comments, and follows.
type NotificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// List returns username's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, username string) ([]models.Notification, error) {
	return s.notifications.ListForUser(ctx, username)
}

// UnreadCount returns the number of unread notifications for username.
func (s *NotificationService) UnreadCount(ctx context.Context, username string) (int, error) {
	return s.notifications.UnreadCount(ctx, username)
}

// MarkRead marks a single notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}

// MarkAllRead marks every notification for username as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, username string) error {
	return s.notifications.MarkAllRead(ctx, username)
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.notifications.Delete(ctx, id)
}
