package repository

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	SaveAll(ctx context.Context, posts []models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetByUsername(ctx context.Context, username string) ([]models.Post, error)
	Add(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	store *storage.Store
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(store *storage.Store) PostRepository {
	return &postRepository{store: store}
}

// GetAll returns posts in stored order, which is newest first: Add prepends.
func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	r.store.Get(storage.KeyPosts, &posts)
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (r *postRepository) SaveAll(ctx context.Context, posts []models.Post) error {
	if !r.store.Set(storage.KeyPosts, posts) {
		return persistErr(storage.KeyPosts)
	}
	return nil
}

// GetByID returns nil without error when no post matches.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	posts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (r *postRepository) GetByUsername(ctx context.Context, username string) ([]models.Post, error) {
	posts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Post{}
	for _, p := range posts {
		if p.Username == username {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Add prepends so that reads come back in reverse-chronological order without
// sorting. This ordering is part of the contract, not an accident.
func (r *postRepository) Add(ctx context.Context, post *models.Post) error {
	posts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	posts = append([]models.Post{*post}, posts...)
	return r.SaveAll(ctx, posts)
}

// Update replaces the stored record matching post.ID.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	posts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			return r.SaveAll(ctx, posts)
		}
	}
	return models.NewNotFoundError("Post", post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	posts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := posts[:0:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return models.NewNotFoundError("Post", id)
	}
	return r.SaveAll(ctx, kept)
}
