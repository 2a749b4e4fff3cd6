package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/shopforge/admin-api/internal/data"
	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/ports"
)

// Client-facing sentinel errors. Wrong username, wrong password, and a
// malformed stored hash all collapse into ErrInvalidCredentials; the sub-cause
// is logged server-side only. ErrInsufficientRole is deliberately distinct,
// since it leaks nothing useful for credential guessing.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientRole   = errors.New("admin privileges required")
)

// dummyHash keeps the work profile of a failed username lookup comparable to
// a real verification, so "user not found" is not cheaper than "wrong password".
const dummyHash = "5f6c2d3e4a5b6c7d8e9f0a1b2c3d4e5f:" +
	"9c7a1f3e5d7b9a1c3e5f7a9b1d3f5e7c9a1b3d5f7e9c1a3b5d7f9e1c3a5b7d9f" +
	"1e3c5a7b9d1f3e5c7a9b1d3f5e7c9a1b3d5f7e9c1a3b5d7f9e1c3a5b7d9f1e3c"

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenService
	// Denylist enables server-side revocation on logout. Optional.
	Denylist ports.TokenDenylist
	// TokenTTL is the lifetime of issued tokens; unset means the token
	// service default.
	TokenTTL time.Duration
	Logger   *slog.Logger
	// HashWorkers bounds concurrent key derivations. Non-positive defaults to
	// GOMAXPROCS so login bursts cannot monopolize the scheduler.
	HashWorkers int
}

// AuthService orchestrates login: credential verification, the admin role
// gate, and token issuance.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	tokenTTL time.Duration
	logger   *slog.Logger
	hashGate chan struct{}
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.HashWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// Issue treats a zero ttl as immediate expiry, so an unset option is
	// collapsed into the negative "use the service default" form.
	tokenTTL := opts.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = -1
	}
	return &AuthService{
		users:    opts.Users,
		hasher:   opts.Hasher,
		tokens:   opts.Tokens,
		denylist: opts.Denylist,
		tokenTTL: tokenTTL,
		logger:   logger,
		hashGate: make(chan struct{}, workers),
	}
}

// Login verifies the username/password pair and returns a signed token for
// admin users. Every credential failure surfaces as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, lookupErr := s.users.GetByUsername(ctx, username)
	if lookupErr != nil {
		if errors.Is(lookupErr, data.ErrDuplicateUserRecords) {
			// Provisioning defect; an internal error, never an auth decision.
			return "", fmt.Errorf("user lookup: %w", lookupErr)
		}
		if !errors.Is(lookupErr, data.ErrUserNotFound) {
			return "", fmt.Errorf("user lookup: %w", lookupErr)
		}
	}

	stored := dummyHash
	if user != nil {
		stored = user.PasswordHash
	}

	ok, verifyErr := s.verify(ctx, stored, password)
	if verifyErr != nil {
		return "", verifyErr
	}
	if !ok || user == nil {
		s.logger.InfoContext(ctx, "login rejected",
			"username", username,
			"user_exists", user != nil,
		)
		return "", ErrInvalidCredentials
	}

	if user.Role != domainauth.RoleAdmin {
		s.logger.InfoContext(ctx, "login rejected: insufficient role",
			"username", username,
			"role", user.Role,
		)
		return "", ErrInsufficientRole
	}

	token, err := s.tokens.Issue(domainauth.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "login succeeded", "username", username)
	return token, nil
}

// verify runs the deliberately slow key derivation behind the worker gate so
// one burst of logins cannot stall unrelated requests.
func (s *AuthService) verify(ctx context.Context, stored, password string) (bool, error) {
	select {
	case s.hashGate <- struct{}{}:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	defer func() { <-s.hashGate }()

	return s.hasher.Verify(stored, password), nil
}

// Logout revokes the token server-side when a denylist is configured.
// An unverifiable token is already unusable, so logout treats it as done.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if s.denylist == nil || rawToken == "" {
		return nil
	}

	claims, err := s.tokens.Verify(ctx, rawToken)
	if err != nil {
		return nil
	}

	if revokeErr := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); revokeErr != nil {
		return fmt.Errorf("revoke token: %w", revokeErr)
	}

	s.logger.InfoContext(ctx, "token revoked", "username", claims.Username, "token_id", claims.TokenID)
	return nil
}
