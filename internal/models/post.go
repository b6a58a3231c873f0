package models

import "time"

// Post represents a feed entry. Likes holds each liker's username at most
// once. The ID is a creation-time token, so higher IDs are newer posts.
type Post struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Likes     []string  `json:"likes"`
	Timestamp time.Time `json:"timestamp"`
}

// LikedBy reports whether username has liked the post.
func (p *Post) LikedBy(username string) bool {
	for _, name := range p.Likes {
		if name == username {
			return true
		}
	}
	return false
}
