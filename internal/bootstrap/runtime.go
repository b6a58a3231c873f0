// Package bootstrap wires the store, repositories, and services into a
// runtime used by the CLI and integration tests.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"ripple/internal/archive"
	"ripple/internal/clock"
	"ripple/internal/config"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/seed"
	"ripple/internal/service"
	"ripple/internal/storage"
)

// Options control runtime initialization behavior.
type Options struct {
	// Fs overrides the backing filesystem; nil means the OS filesystem.
	Fs afero.Fs
	// SeedSampleData runs the idempotent sample seeder after wiring.
	SeedSampleData bool
	// Clock overrides the time source; nil means the system clock.
	Clock clock.Clock
}

// Runtime bundles the wired services around one store.
type Runtime struct {
	Config *config.Config
	Store  *storage.Store

	Auth          *service.AuthService
	Users         *service.UserService
	Posts         *service.PostService
	Messages      *service.MessageService
	Notifications *service.NotificationService
	Archive       *archive.Service
}

// InitRuntime builds the store and services and optionally seeds sample data.
func InitRuntime(cfg *config.Config, opts Options) (*Runtime, error) {
	observability.ConfigureLevel(cfg.LogLevel)

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}

	store := storage.New(fs, cfg.DataDir, cfg.StorePrefix)
	ids := clock.NewIDSource(clk)

	users := repository.NewUserRepository(store)
	posts := repository.NewPostRepository(store)
	comments := repository.NewCommentRepository(store)
	messages := repository.NewMessageRepository(store)
	notifications := repository.NewNotificationRepository(store)
	sessions := repository.NewSessionRepository(store)

	rt := &Runtime{
		Config:        cfg,
		Store:         store,
		Auth:          service.NewAuthService(users, sessions, clk),
		Users:         service.NewUserService(users, notifications, ids, clk),
		Posts:         service.NewPostService(posts, comments, notifications, ids, clk),
		Messages:      service.NewMessageService(messages, users, ids, clk),
		Notifications: service.NewNotificationService(notifications),
		Archive:       archive.NewService(store, clk),
	}

	if opts.SeedSampleData {
		seeder := seed.NewSeeder(store, users, posts, comments, messages, notifications, ids, clk)
		if err := seeder.Run(context.Background()); err != nil {
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
	}

	return rt, nil
}
