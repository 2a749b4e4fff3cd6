package token

// Package token implements the ports.TokenService contract with HMAC-SHA-256
// signed JWTs. A single symmetric secret signs every token; verification needs
// no server-side lookup unless the optional denylist is configured.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/ports"
)

// ErrTokenInvalid is the single error any caller outside the security boundary
// sees. Expired, malformed, forged, and revoked tokens are indistinguishable
// to clients; the sub-cause is logged server-side only.
var ErrTokenInvalid = errors.New("invalid or expired session")

// Internal sub-causes, kept behind ErrTokenInvalid for operator logs.
var (
	errTokenExpired   = errors.New("token expired")
	errTokenMalformed = errors.New("token malformed or forged")
	errTokenRevoked   = errors.New("token revoked")
)

var _ ports.TokenService = (*Service)(nil)

// ServiceOptions groups dependencies for Service.
type ServiceOptions struct {
	// Secret is the server-wide signing secret. Required.
	Secret string
	// DefaultTTL applies when Issue is called with a negative ttl.
	DefaultTTL time.Duration
	// Denylist enables the opt-in revocation check. Nil keeps the service
	// fully stateless.
	Denylist ports.TokenDenylist
	Logger   *slog.Logger
}

// Service issues and verifies signed identity tokens.
type Service struct {
	secret     []byte
	defaultTTL time.Duration
	denylist   ports.TokenDenylist
	logger     *slog.Logger
	timeNow    func() time.Time
}

// NewService constructs a Service. An empty secret is a configuration error:
// the process must refuse to start rather than sign with a guessable key.
func NewService(opts ServiceOptions) (*Service, error) {
	if opts.Secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	ttl := opts.DefaultTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		secret:     []byte(opts.Secret),
		defaultTTL: ttl,
		denylist:   opts.Denylist,
		logger:     logger,
		timeNow:    time.Now,
	}, nil
}

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	jwt.RegisteredClaims
	Username string          `json:"username"`
	Role     domainauth.Role `json:"role"`
}

// Issue produces a signed token for the identity. A negative ttl uses the
// service default (1 hour unless configured otherwise). A zero ttl is honored
// as written: the token carries exp equal to iat and is already expired on the
// next verification tick.
func (s *Service) Issue(identity domainauth.Identity, ttl time.Duration) (string, error) {
	if ttl < 0 {
		ttl = s.defaultTTL
	}

	now := s.timeNow()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Username: identity.Username,
		Role:     identity.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, structure, and expiry, plus the denylist when one
// is configured. All fields of the returned claims are populated and validated
// eagerly; a payload missing any identity field fails here, not downstream.
func (s *Service) Verify(ctx context.Context, tokenString string) (domainauth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeNow),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domainauth.Claims{}, s.reject(ctx, classifyParseError(err))
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return domainauth.Claims{}, s.reject(ctx, errTokenMalformed)
	}

	if claims.Subject == "" || claims.Username == "" || claims.Role == "" ||
		claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return domainauth.Claims{}, s.reject(ctx, fmt.Errorf("%w: missing required claim", errTokenMalformed))
	}

	if s.denylist != nil {
		revoked, dErr := s.denylist.IsRevoked(ctx, claims.ID)
		if dErr != nil {
			// Fail closed: a denylist outage must not widen access.
			return domainauth.Claims{}, s.reject(ctx, fmt.Errorf("denylist check: %w", dErr))
		}
		if revoked {
			return domainauth.Claims{}, s.reject(ctx, errTokenRevoked)
		}
	}

	return domainauth.Claims{
		UserID:    claims.Subject,
		Username:  claims.Username,
		Role:      claims.Role,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// reject logs the internal cause and returns the one generic error.
func (s *Service) reject(ctx context.Context, cause error) error {
	s.logger.InfoContext(ctx, "token verification failed", "cause", cause)
	return ErrTokenInvalid
}

// classifyParseError maps jwt library errors onto the internal taxonomy so
// logs can tell expiry from forgery. Clients never see the distinction.
func classifyParseError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %w", errTokenExpired, err)
	}
	return fmt.Errorf("%w: %w", errTokenMalformed, err)
}
