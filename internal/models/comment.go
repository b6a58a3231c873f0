package models

import "time"

// Comment belongs to a post by PostID and is removed when that post is
// deleted.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
