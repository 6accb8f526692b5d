package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

// bcryptCost matches bcrypt.DefaultCost; kept explicit because the hashing
// strength is part of the credential contract.
const bcryptCost = 10

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	events ports.EventSink
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, events ports.EventSink, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, events: events, logger: logger}
}

// Register creates a new USER account and returns a token for it. The
// plaintext password is hashed before it reaches the repository and is
// never logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique constraint still backs the pre-check against races.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Identity())
	if err != nil {
		return "", nil, err
	}

	s.emit(domain.EventUserRegistered, created.ID, created.ID)
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return token, created, nil
}

// Login verifies a username/password pair and returns a fresh token.
// An unknown username and a wrong password produce the identical error so
// responses carry no username-enumeration signal.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.emit(domain.EventLoginFailed, "", "")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.emit(domain.EventLoginFailed, user.ID, "")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Me re-reads the account behind an authenticated identity.
func (s *AuthService) Me(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return s.users.FindByID(ctx, identity.ID)
}

func (s *AuthService) emit(kind domain.EventKind, resourceID, actorID string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(domain.Event{
		Kind:       kind,
		ResourceID: resourceID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
	})
}
