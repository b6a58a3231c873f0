package service

import (
	"context"
	"strings"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// PostService provides post, like, and comment business logic.
type PostService struct {
	posts         repository.PostRepository
	comments      repository.CommentRepository
	notifications repository.NotificationRepository
	ids           *clock.IDSource
	clock         clock.Clock
}

// NewPostService returns a new PostService.
func NewPostService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	notifications repository.NotificationRepository,
	ids *clock.IDSource,
	clk clock.Clock,
) *PostService {
	return &PostService{
		posts:         posts,
		comments:      comments,
		notifications: notifications,
		ids:           ids,
		clock:         clk,
	}
}

// CreatePost requires non-empty trimmed content or an image. The new post
// goes to the front of the collection.
func (s *PostService) CreatePost(ctx context.Context, username, content, image string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" && image == "" {
		return nil, models.NewValidationError("Content or an image is required")
	}

	post := &models.Post{
		ID:        s.ids.Next(),
		Username:  username,
		Content:   content,
		Image:     image,
		Likes:     []string{},
		Timestamp: s.clock.Now(),
	}
	if err := s.posts.Add(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetAll(ctx)
}

// ListPostsByUser returns username's posts, newest first.
func (s *PostService) ListPostsByUser(ctx context.Context, username string) ([]models.Post, error) {
	return s.posts.GetByUsername(ctx, username)
}

// ToggleLike flips username's membership in the post's likes set and returns
// the new state with the like count. The post owner is notified only on the
// like transition, and never about their own likes.
func (s *PostService) ToggleLike(ctx context.Context, postID int64, username string) (bool, int, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	if post == nil {
		return false, 0, models.NewNotFoundError("Post", postID)
	}

	liked := !post.LikedBy(username)
	if liked {
		post.Likes = append(post.Likes, username)
	} else {
		post.Likes = removeString(post.Likes, username)
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return false, 0, err
	}

	if liked && post.Username != username {
		notification := &models.Notification{
			ID:        s.ids.Next(),
			Username:  post.Username,
			Type:      models.NotificationLike,
			FromUser:  username,
			PostID:    postID,
			Timestamp: s.clock.Now(),
		}
		if err := s.notifications.Add(ctx, notification); err != nil {
			return false, 0, err
		}
	}

	return liked, len(post.Likes), nil
}

// DeletePost removes the post and cascades to its comments. Only the owner
// may delete.
func (s *PostService) DeletePost(ctx context.Context, postID int64, username string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewNotFoundError("Post", postID)
	}
	if post.Username != username {
		return models.NewAuthorizationError("You can only delete your own posts")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	return s.comments.DeleteByPost(ctx, postID)
}

// AddComment appends a comment to an existing post and notifies the post
// owner unless they authored the comment themselves.
func (s *PostService) AddComment(ctx context.Context, postID int64, username, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comment := &models.Comment{
		ID:        s.ids.Next(),
		PostID:    postID,
		Username:  username,
		Content:   content,
		Timestamp: s.clock.Now(),
	}
	if err := s.comments.Add(ctx, comment); err != nil {
		return nil, err
	}

	if post.Username != username {
		notification := &models.Notification{
			ID:        s.ids.Next(),
			Username:  post.Username,
			Type:      models.NotificationComment,
			FromUser:  username,
			PostID:    postID,
			Timestamp: s.clock.Now(),
		}
		if err := s.notifications.Add(ctx, notification); err != nil {
			return nil, err
		}
	}

	return comment, nil
}

// ListComments returns the post's comments oldest first.
func (s *PostService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// DeleteComment removes a single comment. Only its author may delete.
func (s *PostService) DeleteComment(ctx context.Context, commentID int64, username string) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return models.NewNotFoundError("Comment", commentID)
	}
	if comment.Username != username {
		return models.NewAuthorizationError("You can only delete your own comments")
	}
	return s.comments.Delete(ctx, commentID)
}
