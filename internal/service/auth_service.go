// Package service implements the domain operations composed from repository
// calls: registration and login, posting, the follow graph, messaging, and
// notification delivery.
package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/clock"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// AuthService handles registration, login, and the current session.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	clock    clock.Clock
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
}

// NewAuthService returns a new AuthService.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, clk clock.Clock) *AuthService {
	return &AuthService{users: users, sessions: sessions, clock: clk}
}

// Register creates a new account with an empty social graph. The password is
// stored as a bcrypt hash. Username and email must be unique, compared
// case-sensitively as stored.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" || in.FullName == "" || in.Email == "" {
		return nil, models.NewValidationError("All fields are required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username is already taken")
	}
	existing, err = s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Password:  string(hashed),
		FullName:  in.FullName,
		Email:     in.Email,
		Followers: []string{},
		Following: []string{},
		CreatedAt: s.clock.Now(),
	}
	if err := s.users.Add(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and establishes the session. The session
// stores the username only; the user record stays in the users collection.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewAuthError("Invalid credentials")
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		Username:  user.Username,
		CreatedAt: s.clock.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session. Logging out while logged out is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser resolves the session reference to the live user record. It
// returns nil without error when nobody is logged in; a session pointing at a
// deleted user is treated the same way.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return s.users.GetByUsername(ctx, session.Username)
}
