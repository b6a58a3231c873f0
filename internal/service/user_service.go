package service

import (
	"context"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService provides profile and follow-graph business logic.
type UserService struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	ids           *clock.IDSource
	clock         clock.Clock
}

// UpdateProfileInput carries the optional profile fields; empty fields are
// left unchanged.
type UpdateProfileInput struct {
	FullName     string
	Bio          string
	ProfileImage string
}

// NewUserService returns a new UserService.
func NewUserService(users repository.UserRepository, notifications repository.NotificationRepository, ids *clock.IDSource, clk clock.Clock) *UserService {
	return &UserService{users: users, notifications: notifications, ids: ids, clock: clk}
}

// GetUser returns the user record for username.
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

// SearchUsers matches the query against usernames and full names.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return s.users.Search(ctx, query)
}

// UpdateProfile merges the provided fields into the user record.
func (s *UserService) UpdateProfile(ctx context.Context, username string, in UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.ProfileImage != "" {
		user.ProfileImage = in.ProfileImage
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleFollow flips whether actor follows target and returns the new state
// with target's follower count. Both sides of the relationship change inside
// one write of the users collection, which is what keeps the
// following/followers sets symmetric. A follow notification is emitted only
// on the follow transition.
func (s *UserService) ToggleFollow(ctx context.Context, target, actor string) (bool, int, error) {
	if target == actor {
		return false, 0, models.NewValidationError("You cannot follow yourself")
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return false, 0, err
	}

	actorIdx, targetIdx := -1, -1
	for i := range users {
		switch users[i].Username {
		case actor:
			actorIdx = i
		case target:
			targetIdx = i
		}
	}
	if actorIdx == -1 {
		return false, 0, models.NewNotFoundError("User", actor)
	}
	if targetIdx == -1 {
		return false, 0, models.NewNotFoundError("User", target)
	}

	following := !users[actorIdx].IsFollowing(target)
	if following {
		users[actorIdx].Following = append(users[actorIdx].Following, target)
		users[targetIdx].Followers = append(users[targetIdx].Followers, actor)
	} else {
		users[actorIdx].Following = removeString(users[actorIdx].Following, target)
		users[targetIdx].Followers = removeString(users[targetIdx].Followers, actor)
	}

	if err := s.users.SaveAll(ctx, users); err != nil {
		return false, 0, err
	}

	if following {
		notification := &models.Notification{
			ID:        s.ids.Next(),
			Username:  target,
			Type:      models.NotificationFollow,
			FromUser:  actor,
			Timestamp: s.clock.Now(),
		}
		if err := s.notifications.Add(ctx, notification); err != nil {
			return false, 0, err
		}
	}

	return following, len(users[targetIdx].Followers), nil
}

func removeString(list []string, value string) []string {
	kept := list[:0:0]
	for _, v := range list {
		if v != value {
			kept = append(kept, v)
		}
	}
	return kept
}
