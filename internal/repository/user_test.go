package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripple/internal/models"
	"ripple/internal/testutil"
)

func TestUserRepository_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty store lists no users", func(t *testing.T) {
		t.Parallel()
		repo := NewUserRepository(testutil.NewStore(t))

		users, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("add then fetch by username and email", func(t *testing.T) {
		t.Parallel()
		repo := NewUserRepository(testutil.NewStore(t))

		alice := testutil.NewUser(t, "alice")
		require.NoError(t, repo.Add(ctx, &alice))

		byName, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, "alice@example.com", byName.Email)

		byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, "alice", byEmail.Username)
	})

	t.Run("lookups are case-sensitive as stored", func(t *testing.T) {
		t.Parallel()
		repo := NewUserRepository(testutil.NewStore(t))

		alice := testutil.NewUser(t, "alice")
		require.NoError(t, repo.Add(ctx, &alice))

		miss, err := repo.GetByUsername(ctx, "Alice")
		require.NoError(t, err)
		assert.Nil(t, miss)

		miss, err = repo.GetByEmail(ctx, "ALICE@example.com")
		require.NoError(t, err)
		assert.Nil(t, miss)
	})

	t.Run("update replaces the stored record", func(t *testing.T) {
		t.Parallel()
		repo := NewUserRepository(testutil.NewStore(t))

		alice := testutil.NewUser(t, "alice")
		require.NoError(t, repo.Add(ctx, &alice))

		alice.Bio = "updated"
		require.NoError(t, repo.Update(ctx, &alice))

		got, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "updated", got.Bio)
	})

	t.Run("update of unknown user reports not found", func(t *testing.T) {
		t.Parallel()
		repo := NewUserRepository(testutil.NewStore(t))

		ghost := testutil.NewUser(t, "ghost")
		err := repo.Update(ctx, &ghost)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("delete removes only the named user", func(t *testing.T) {
		t.Parallel()
		repo := NewUserRepository(testutil.NewStore(t))

		alice := testutil.NewUser(t, "alice")
		bob := testutil.NewUser(t, "bob")
		require.NoError(t, repo.Add(ctx, &alice))
		require.NoError(t, repo.Add(ctx, &bob))

		require.NoError(t, repo.Delete(ctx, "alice"))

		users, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "bob", users[0].Username)
	})
}

func TestUserRepository_Search(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewUserRepository(testutil.NewStore(t))
	for _, name := range []string{"alice", "bob", "alina"} {
		u := testutil.NewUser(t, name)
		require.NoError(t, repo.Add(ctx, &u))
	}

	t.Run("empty query returns everyone", func(t *testing.T) {
		t.Parallel()
		users, err := repo.Search(ctx, "  ")
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("matches username case-insensitively", func(t *testing.T) {
		t.Parallel()
		users, err := repo.Search(ctx, "ALI")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
		assert.Equal(t, "alina", users[1].Username)
	})

	t.Run("matches full name", func(t *testing.T) {
		t.Parallel()
		users, err := repo.Search(ctx, "user bob")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "bob", users[0].Username)
	})
}

func TestSessionRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no session by default", func(t *testing.T) {
		t.Parallel()
		repo := NewSessionRepository(testutil.NewStore(t))

		session, err := repo.Current(ctx)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("set then clear round trip", func(t *testing.T) {
		t.Parallel()
		repo := NewSessionRepository(testutil.NewStore(t))

		require.NoError(t, repo.Set(ctx, &models.Session{ID: "s1", Username: "alice"}))

		session, err := repo.Current(ctx)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "alice", session.Username)

		require.NoError(t, repo.Clear(ctx))
		session, err = repo.Current(ctx)
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}
