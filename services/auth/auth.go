package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"facilpay-api/logger"
	"facilpay-api/models/user"
	"facilpay-api/services/credential"
	"facilpay-api/services/token"
	"facilpay-api/types"
)

// AccountStore is the persistence contract the auth flow depends on. Email
// uniqueness is enforced at the storage layer.
type AccountStore interface {
	// FindByEmail returns (nil, nil) when no account matches.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	// FindByID fails with a not-found error when the account is missing.
	FindByID(ctx context.Context, id string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Save(ctx context.Context, u *user.User) error
}

// Service orchestrates registration and login over the account store, the
// credential hasher and the token service. Stateless across calls.
type Service struct {
	store  AccountStore
	tokens *token.Service
	log    *zap.Logger
}

func NewService(store AccountStore, tokens *token.Service) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		log:    logger.Named("AuthService"),
	}
}

// Register creates a new account. The password is hashed before it is
// persisted and the returned record carries no credential.
func (s *Service) Register(ctx context.Context, req types.RegisterRequest) (*user.User, error) {
	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("look up account by email: %w", err)
	}
	if existing != nil {
		return nil, types.NewAuthError("User already exists")
	}

	hashed, err := credential.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{Email: req.Email, Password: hashed}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered", zap.String("userId", u.ID), zap.String("email", u.Email))

	u.Password = ""
	return u, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password fail identically so callers cannot tell which check failed.
func (s *Service) Login(ctx context.Context, req types.LoginRequest) (string, *user.User, error) {
	u, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, fmt.Errorf("look up account by email: %w", err)
	}
	if u == nil || !credential.Verify(req.Password, u.Password) {
		return "", nil, types.NewAuthError("Invalid credentials")
	}

	accessToken, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("userId", u.ID))

	u.Password = ""
	return accessToken, u, nil
}

// ValidateUser resolves a subject id to its account. Lookup failures collapse
// into an absent result: for token-to-identity resolution, "no such user"
// behaves like "unauthenticated", not like a crash.
func (s *Service) ValidateUser(ctx context.Context, userID string) *user.User {
	u, err := s.store.FindByID(ctx, userID)
	if err != nil || u == nil {
		return nil
	}

	u.Password = ""
	return u
}
