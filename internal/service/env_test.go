package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/testutil"
)

// env wires every service over one in-memory store with a fixed clock.
type env struct {
	clock *testutil.FixedClock
	ids   *clock.IDSource

	users         repository.UserRepository
	posts         repository.PostRepository
	comments      repository.CommentRepository
	messages      repository.MessageRepository
	notifications repository.NotificationRepository
	sessions      repository.SessionRepository

	auth  *AuthService
	user  *UserService
	post  *PostService
	msg   *MessageService
	notif *NotificationService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := testutil.NewStore(t)
	clk := testutil.NewFixedClock()
	ids := clock.NewIDSource(clk)

	e := &env{
		clock:         clk,
		ids:           ids,
		users:         repository.NewUserRepository(store),
		posts:         repository.NewPostRepository(store),
		comments:      repository.NewCommentRepository(store),
		messages:      repository.NewMessageRepository(store),
		notifications: repository.NewNotificationRepository(store),
		sessions:      repository.NewSessionRepository(store),
	}
	e.auth = NewAuthService(e.users, e.sessions, clk)
	e.user = NewUserService(e.users, e.notifications, ids, clk)
	e.post = NewPostService(e.posts, e.comments, e.notifications, ids, clk)
	e.msg = NewMessageService(e.messages, e.users, ids, clk)
	e.notif = NewNotificationService(e.notifications)
	return e
}

func (e *env) addUser(t *testing.T, username string) models.User {
	t.Helper()
	u := testutil.NewUser(t, username)
	require.NoError(t, e.users.Add(context.Background(), &u))
	return u
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, models.IsCode(err, code),
		"expected code %s, got %q (%v)", code, models.ErrorCode(err), err)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertCode(t, err, models.CodeValidation)
}
