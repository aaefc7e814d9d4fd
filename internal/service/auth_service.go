package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_manager/internal/model"
	"inventory_manager/internal/repository"
	"inventory_manager/internal/session"
	"inventory_manager/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
)

// AuthService verifies credentials and manages sessions
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ValidateSession(token string) (int, error)
	DestroySession(token string)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   session.Store
	tokenUtil  *utils.TokenUtil
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessions session.Store, tokenUtil *utils.TokenUtil, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		tokenUtil:  tokenUtil,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if len(password) < 4 {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraint is the source of truth for taken usernames;
		// no racy pre-check query.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a session token. Unknown usernames
// and wrong passwords produce the same error so callers cannot probe for
// accounts.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.createSession(user.ID)
}

// createSession registers a server-side session and wraps its id in a signed
// token for the client.
func (s *authService) createSession(userID int) (string, error) {
	sessionID := uuid.NewString()
	token, err := s.tokenUtil.GenerateToken(sessionID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	s.sessions.Create(sessionID, userID, s.sessionTTL)
	return token, nil
}

// ValidateSession returns the user id bound to a token. The signature check
// alone is not enough: the session must still exist server-side, so logout
// revokes tokens before they expire.
func (s *authService) ValidateSession(token string) (int, error) {
	claims, err := s.tokenUtil.ValidateToken(token)
	if err != nil {
		return 0, ErrNotAuthenticated
	}
	userID, ok := s.sessions.Validate(claims.SessionID)
	if !ok {
		return 0, ErrNotAuthenticated
	}
	return userID, nil
}

// DestroySession revokes the session behind a token. Idempotent: malformed
// tokens and already-destroyed sessions are silently ignored.
func (s *authService) DestroySession(token string) {
	claims, err := s.tokenUtil.ValidateToken(token)
	if err != nil {
		return
	}
	s.sessions.Destroy(claims.SessionID)
}
