package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/models"
)

func validRegistration() RegisterInput {
	return RegisterInput{
		Username: "alice",
		Password: "sup3rsecret",
		FullName: "Alice A",
		Email:    "alice@example.com",
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates a user with an empty social graph", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		user, err := e.auth.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.Empty(t, user.Followers)
		assert.Empty(t, user.Following)
		assert.NotNil(t, user.Followers, "empty set, not absent set")

		byName, err := e.users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byName)

		byEmail, err := e.users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
	})

	t.Run("stores a password hash, never plaintext", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		user, err := e.auth.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.NotEqual(t, "sup3rsecret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("sup3rsecret")))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		in := validRegistration()
		in.FullName = ""
		_, err := e.auth.Register(ctx, in)
		assertValidationError(t, err)
	})

	t.Run("rejects a two-character username, accepts three", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		in := RegisterInput{Username: "ab", Password: "123456", FullName: "A", Email: "a@x.com"}
		_, err := e.auth.Register(ctx, in)
		assertValidationError(t, err)
		assert.Contains(t, err.Error(), "username")

		in.Username = "abc"
		_, err = e.auth.Register(ctx, in)
		require.NoError(t, err)
	})

	t.Run("rejects a five-character password", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		in := validRegistration()
		in.Password = "12345"
		_, err := e.auth.Register(ctx, in)
		assertValidationError(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		in := validRegistration()
		in.Email = "not-an-email"
		_, err := e.auth.Register(ctx, in)
		assertValidationError(t, err)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		_, err := e.auth.Register(ctx, validRegistration())
		require.NoError(t, err)

		in := validRegistration()
		in.Email = "other@example.com"
		_, err = e.auth.Register(ctx, in)
		assertCode(t, err, models.CodeConflict)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		_, err := e.auth.Register(ctx, validRegistration())
		require.NoError(t, err)

		in := validRegistration()
		in.Username = "alice2"
		_, err = e.auth.Register(ctx, in)
		assertCode(t, err, models.CodeConflict)
	})

	t.Run("uniqueness is case-sensitive as stored", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		_, err := e.auth.Register(ctx, validRegistration())
		require.NoError(t, err)

		in := validRegistration()
		in.Username = "Alice"
		in.Email = "Alice@example.com"
		_, err = e.auth.Register(ctx, in)
		require.NoError(t, err, "differently-cased username and email are distinct")
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("establishes a session referencing the user", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.addUser(t, "alice")

		user, err := e.auth.Login(ctx, "alice", "alice-secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		session, err := e.sessions.Current(ctx)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "alice", session.Username)
		assert.NotEmpty(t, session.ID)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		_, err := e.auth.Login(ctx, "ghost", "whatever")
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.addUser(t, "alice")

		_, err := e.auth.Login(ctx, "alice", "wrong")
		assertCode(t, err, models.CodeUnauthorized)
	})

	t.Run("empty credentials are a validation error", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		_, err := e.auth.Login(ctx, "", "")
		assertValidationError(t, err)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil when logged out", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)

		user, err := e.auth.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("resolves the live record, not a login-time copy", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.addUser(t, "alice")

		_, err := e.auth.Login(ctx, "alice", "alice-secret")
		require.NoError(t, err)

		_, err = e.user.UpdateProfile(ctx, "alice", UpdateProfileInput{Bio: "fresh bio"})
		require.NoError(t, err)

		current, err := e.auth.CurrentUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "fresh bio", current.Bio)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.addUser(t, "alice")

		_, err := e.auth.Login(ctx, "alice", "alice-secret")
		require.NoError(t, err)
		require.NoError(t, e.auth.Logout(ctx))

		user, err := e.auth.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}
