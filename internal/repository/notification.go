package repository

import (
	"context"
	"sort"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	GetAll(ctx context.Context) ([]models.Notification, error)
	SaveAll(ctx context.Context, notifications []models.Notification) error
	Add(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, username string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, username string) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, username string) error
	Delete(ctx context.Context, id int64) error
}

type notificationRepository struct {
	store *storage.Store
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(store *storage.Store) NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) GetAll(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	r.store.Get(storage.KeyNotifications, &notifications)
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (r *notificationRepository) SaveAll(ctx context.Context, notifications []models.Notification) error {
	if !r.store.Set(storage.KeyNotifications, notifications) {
		return persistErr(storage.KeyNotifications)
	}
	return nil
}

func (r *notificationRepository) Add(ctx context.Context, notification *models.Notification) error {
	notifications, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	notifications = append(notifications, *notification)
	return r.SaveAll(ctx, notifications)
}

// ListForUser returns the recipient's notifications newest first.
func (r *notificationRepository) ListForUser(ctx context.Context, username string) ([]models.Notification, error) {
	notifications, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Notification{}
	for _, n := range notifications {
		if n.Username == username {
			matched = append(matched, n)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	return matched, nil
}

// UnreadCount is recomputed on every call rather than maintained as a
// counter.
func (r *notificationRepository) UnreadCount(ctx context.Context, username string) (int, error) {
	notifications, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if n.Username == username && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	notifications, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			if notifications[i].Read {
				return nil
			}
			notifications[i].Read = true
			return r.SaveAll(ctx, notifications)
		}
	}
	return models.NewNotFoundError("Notification", id)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, username string) error {
	notifications, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	updated := false
	for i := range notifications {
		if notifications[i].Username == username && !notifications[i].Read {
			notifications[i].Read = true
			updated = true
		}
	}
	if !updated {
		return nil
	}
	return r.SaveAll(ctx, notifications)
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	notifications, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := notifications[:0:0]
	for _, n := range notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notifications) {
		return models.NewNotFoundError("Notification", id)
	}
	return r.SaveAll(ctx, kept)
}
