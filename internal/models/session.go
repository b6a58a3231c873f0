package models

import "time"

// Session identifies the authenticated actor by username reference. Only the
// reference is persisted; the user record itself lives in the users
// collection and is resolved on demand, so there is never a second copy to
// keep in sync.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
