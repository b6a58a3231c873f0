package repository

import (
	"context"
	"sort"

	"ripple/internal/models"
	"ripple/internal/storage"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	GetAll(ctx context.Context) ([]models.Comment, error)
	SaveAll(ctx context.Context, comments []models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
	DeleteByPost(ctx context.Context, postID int64) error
}

type commentRepository struct {
	store *storage.Store
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(store *storage.Store) CommentRepository {
	return &commentRepository{store: store}
}

func (r *commentRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	r.store.Get(storage.KeyComments, &comments)
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (r *commentRepository) SaveAll(ctx context.Context, comments []models.Comment) error {
	if !r.store.Set(storage.KeyComments, comments) {
		return persistErr(storage.KeyComments)
	}
	return nil
}

// GetByID returns nil without error when no comment matches.
func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	comments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i], nil
		}
	}
	return nil, nil
}

// ListByPost returns the post's comments oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Comment{}
	for _, c := range comments {
		if c.PostID == postID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	return matched, nil
}

func (r *commentRepository) Add(ctx context.Context, comment *models.Comment) error {
	comments, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	comments = append(comments, *comment)
	return r.SaveAll(ctx, comments)
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	comments, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := comments[:0:0]
	for _, c := range comments {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(comments) {
		return models.NewNotFoundError("Comment", id)
	}
	return r.SaveAll(ctx, kept)
}

// DeleteByPost removes every comment owned by postID. Removing zero comments
// is not an error; it happens for posts that were never commented on.
func (r *commentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	comments, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := comments[:0:0]
	for _, c := range comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(comments) {
		return nil
	}
	return r.SaveAll(ctx, kept)
}
