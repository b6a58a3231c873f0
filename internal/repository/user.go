package repository

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	SaveAll(ctx context.Context, users []models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, username string) error
	Search(ctx context.Context, query string) ([]models.User, error)
}

type userRepository struct {
	store *storage.Store
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(store *storage.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	r.store.Get(storage.KeyUsers, &users)
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *userRepository) SaveAll(ctx context.Context, users []models.User) error {
	if !r.store.Set(storage.KeyUsers, users) {
		return persistErr(storage.KeyUsers)
	}
	return nil
}

// GetByUsername returns nil without error when no user matches.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByEmail returns nil without error when no user matches. Emails are
// compared case-sensitively as stored.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) Add(ctx context.Context, user *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.SaveAll(ctx, users)
}

// Update replaces the stored record matching user.Username.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == user.Username {
			users[i] = *user
			return r.SaveAll(ctx, users)
		}
	}
	return models.NewNotFoundError("User", user.Username)
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := users[:0:0]
	for _, u := range users {
		if u.Username != username {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return models.NewNotFoundError("User", username)
	}
	return r.SaveAll(ctx, kept)
}

// Search matches the query case-insensitively against username and full
// name. An empty query returns every user.
func (r *userRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users, nil
	}
	matched := []models.User{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), query) ||
			strings.Contains(strings.ToLower(u.FullName), query) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
