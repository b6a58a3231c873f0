// Package testutil provides shared test doubles and fixtures.
package testutil

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// NewStore returns a Store over an in-memory filesystem.
func NewStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(afero.NewMemMapFs(), "data", storage.DefaultPrefix)
}

// FixedClock is a Clock pinned to T. Advance moves it forward, which keeps
// creation-time IDs and timestamps deterministic in tests.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// NewFixedClock returns a FixedClock pinned to an arbitrary fixed date.
func NewFixedClock() *FixedClock {
	return &FixedClock{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// MustHash bcrypt-hashes password for fixture users. MinCost keeps test runs
// fast.
func MustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	return string(hashed)
}

// NewUser returns a fixture user with an empty social graph.
func NewUser(t *testing.T, username string) models.User {
	t.Helper()
	return models.User{
		Username:  username,
		Password:  MustHash(t, username+"-secret"),
		FullName:  "User " + username,
		Email:     username + "@example.com",
		Followers: []string{},
		Following: []string{},
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}
