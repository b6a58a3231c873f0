package models

import "time"

// NotificationType identifies the action that produced a notification.
type NotificationType string

const (
	// NotificationLike is emitted when someone likes the recipient's post.
	NotificationLike NotificationType = "like"
	// NotificationComment is emitted when someone comments on the recipient's post.
	NotificationComment NotificationType = "comment"
	// NotificationFollow is emitted when someone starts following the recipient.
	NotificationFollow NotificationType = "follow"
)

// Notification is created as a side effect of like/comment/follow actions,
// never when the actor is the recipient. PostID is zero for follow
// notifications.
type Notification struct {
	ID        int64            `json:"id"`
	Username  string           `json:"username"`
	Type      NotificationType `json:"type"`
	FromUser  string           `json:"fromUser"`
	PostID    int64            `json:"postId,omitempty"`
	Read      bool             `json:"read"`
	Timestamp time.Time        `json:"timestamp"`
}
