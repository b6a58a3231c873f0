// Package seed provides helpers to create demo data for the store. These
// helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/storage"
)

// Seeder writes the sample dataset into an empty store.
type Seeder struct {
	store         *storage.Store
	users         repository.UserRepository
	posts         repository.PostRepository
	comments      repository.CommentRepository
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
	ids           *clock.IDSource
	clock         clock.Clock
}

// NewSeeder returns a Seeder over the given store and repositories.
func NewSeeder(
	store *storage.Store,
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	messages repository.MessageRepository,
	notifications repository.NotificationRepository,
	ids *clock.IDSource,
	clk clock.Clock,
) *Seeder {
	gofakeit.Seed(clk.Now().UnixNano())
	return &Seeder{
		store:         store,
		users:         users,
		posts:         posts,
		comments:      comments,
		messages:      messages,
		notifications: notifications,
		ids:           ids,
		clock:         clk,
	}
}

// Run seeds the sample dataset once. Subsequent calls are no-ops guarded by
// the initialized flag.
func (s *Seeder) Run(ctx context.Context) error {
	var initialized bool
	if s.store.Get(storage.KeyDataInitialized, &initialized) && initialized {
		return nil
	}

	now := s.clock.Now()
	sampleUsers := []struct {
		username string
		password string
		fullName string
		email    string
		bio      string
	}{
		{"admin", "admin123", "Admin User", "admin@social.local", "Administrator of this social platform"},
		{"sokha", "sokha123", "Sok Sokha", "sokha@example.com", gofakeit.JobTitle() + " from " + gofakeit.City()},
		{"dara", "dara123", "Chea Dara", "dara@example.com", gofakeit.Phrase()},
	}

	users := make([]models.User, 0, len(sampleUsers))
	for _, su := range sampleUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash sample password: %w", err)
		}
		users = append(users, models.User{
			Username:  su.username,
			Password:  string(hashed),
			FullName:  su.fullName,
			Email:     su.email,
			Bio:       su.bio,
			Followers: []string{},
			Following: []string{},
			CreatedAt: now,
		})
	}
	if err := s.users.SaveAll(ctx, users); err != nil {
		return err
	}

	// Welcome posts, backdated so the feed has history on first open.
	posts := []models.Post{
		{
			ID:        s.ids.Next(),
			Username:  "sokha",
			Content:   "Just finished building " + gofakeit.AppName() + "! " + gofakeit.Emoji(),
			Likes:     []string{},
			Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID:        s.ids.Next(),
			Username:  "admin",
			Content:   "Welcome to the platform! Share your thoughts and connect with friends.",
			Likes:     []string{},
			Timestamp: now.Add(-1 * time.Hour),
		},
	}
	// Insert oldest first so prepend ordering leaves the feed newest first.
	for i := range posts {
		if err := s.posts.Add(ctx, &posts[i]); err != nil {
			return err
		}
	}

	if err := s.comments.SaveAll(ctx, []models.Comment{}); err != nil {
		return err
	}
	if err := s.messages.SaveAll(ctx, []models.Message{}); err != nil {
		return err
	}
	if err := s.notifications.SaveAll(ctx, []models.Notification{}); err != nil {
		return err
	}

	if !s.store.Set(storage.KeyDataInitialized, true) {
		return fmt.Errorf("persist initialized flag")
	}
	return nil
}
