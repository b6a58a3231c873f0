// Package models contains data structures for the application's domain models.
//
// JSON field names match the persisted collection layout and must not change
// without migrating existing stores.
package models

import "time"

// User represents a registered account. Password holds a bcrypt hash, never
// plaintext. Followers and Following are symmetric: b appears in a.Following
// exactly when a appears in b.Followers.
type User struct {
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio"`
	ProfileImage string    `json:"profileImage"`
	Followers    []string  `json:"followers"`
	Following    []string  `json:"following"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsFollowing reports whether the user follows username.
func (u *User) IsFollowing(username string) bool {
	for _, name := range u.Following {
		if name == username {
			return true
		}
	}
	return false
}

// HasFollower reports whether username follows the user.
func (u *User) HasFollower(username string) bool {
	for _, name := range u.Followers {
		if name == username {
			return true
		}
	}
	return false
}
