package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UseCase describes registration, authentication and account behavior.
type UseCase interface {
	Register(ctx context.Context, username, password string) (User, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type LoginResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer) UseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ErrMissingFields
	}

	// If the username is taken, fail fast. Best-effort only: the repository's
	// uniqueness constraint decides concurrent duplicates.
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrUserAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Unknown username and wrong password must be indistinguishable
		// to the caller.
		return LoginResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (s *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Delete(ctx, userID)
}
