package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopforge/admin-api/internal/data"
	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/mocks"
	mockauth "github.com/shopforge/admin-api/internal/mocks/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminUser() *model.User {
	return &model.User{
		ID:           "user-1",
		Username:     "alice",
		PasswordHash: mockauth.FakeHash("correct horse"),
		Role:         domainauth.RoleAdmin,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	tokens := &mockauth.FakeTokenService{}
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: tokens,
		Logger: discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().
		GetByUsername(ctx, "alice").
		Return(adminUser(), nil).
		Times(1)

	token, err := svc.Login(ctx, "alice", "correct horse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, tokens.IssuedCount())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: empty input must be rejected before any lookup.
	mockUsers := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: &mockauth.FakeTokenService{},
		Logger: discardLogger(),
	})

	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"alice", ""},
		{"", ""},
	} {
		_, err := svc.Login(context.Background(), tc.username, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	verifyCalls := 0
	hasher := &mockauth.FakeHasher{
		VerifyFunc: func(stored, candidate string) bool {
			verifyCalls++
			return false
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: hasher,
		Tokens: &mockauth.FakeTokenService{},
		Logger: discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().
		GetByUsername(ctx, "nobody").
		Return(nil, data.ErrUserNotFound).
		Times(1)

	_, err := svc.Login(ctx, "nobody", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	// The key derivation still runs against a placeholder hash so a missing
	// username is not observably faster than a wrong password.
	assert.Equal(t, 1, verifyCalls)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	tokens := &mockauth.FakeTokenService{}
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: tokens,
		Logger: discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().
		GetByUsername(ctx, "alice").
		Return(adminUser(), nil).
		Times(1)

	_, err := svc.Login(ctx, "alice", "incorrect horse")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, tokens.IssuedCount())
}

func TestAuthService_Login_InsufficientRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	tokens := &mockauth.FakeTokenService{}
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: tokens,
		Logger: discardLogger(),
	})

	customer := adminUser()
	customer.Role = domainauth.RoleCustomer

	ctx := context.Background()
	mockUsers.EXPECT().
		GetByUsername(ctx, "alice").
		Return(customer, nil).
		Times(1)

	_, err := svc.Login(ctx, "alice", "correct horse")

	assert.ErrorIs(t, err, ErrInsufficientRole)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, tokens.IssuedCount())
}

func TestAuthService_Login_DuplicateUserRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: &mockauth.FakeTokenService{},
		Logger: discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().
		GetByUsername(ctx, "alice").
		Return(nil, data.ErrDuplicateUserRecords).
		Times(1)

	_, err := svc.Login(ctx, "alice", "correct horse")

	// A duplicated username is a provisioning defect, not a credential failure.
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrDuplicateUserRecords)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: &mockauth.FakeTokenService{},
		Logger: discardLogger(),
	})

	dbErr := errors.New("connection refused")
	ctx := context.Background()
	mockUsers.EXPECT().
		GetByUsername(ctx, "alice").
		Return(nil, dbErr).
		Times(1)

	_, err := svc.Login(ctx, "alice", "correct horse")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_PassesConfiguredTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	var gotTTL time.Duration
	tokens := &mockauth.FakeTokenService{
		IssueFunc: func(identity domainauth.Identity, ttl time.Duration) (string, error) {
			gotTTL = ttl
			return "tok", nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Users:    mockUsers,
		Hasher:   &mockauth.FakeHasher{},
		Tokens:   tokens,
		TokenTTL: 15 * time.Minute,
		Logger:   discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().GetByUsername(ctx, "alice").Return(adminUser(), nil)

	_, err := svc.Login(ctx, "alice", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, gotTTL)
}

func TestAuthService_Login_UnsetTTLDefersToTokenService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	var gotTTL time.Duration
	tokens := &mockauth.FakeTokenService{
		IssueFunc: func(identity domainauth.Identity, ttl time.Duration) (string, error) {
			gotTTL = ttl
			return "tok", nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: tokens,
		Logger: discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().GetByUsername(ctx, "alice").Return(adminUser(), nil)

	_, err := svc.Login(ctx, "alice", "correct horse")

	require.NoError(t, err)
	// A zero ttl means immediate expiry at the token layer, so the unset
	// option must arrive there as the negative "use default" form.
	assert.Negative(t, gotTTL)
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	issueErr := errors.New("signing key unavailable")
	tokens := &mockauth.FakeTokenService{
		IssueFunc: func(identity domainauth.Identity, ttl time.Duration) (string, error) {
			return "", issueErr
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Users:  mockUsers,
		Hasher: &mockauth.FakeHasher{},
		Tokens: tokens,
		Logger: discardLogger(),
	})

	ctx := context.Background()
	mockUsers.EXPECT().GetByUsername(ctx, "alice").Return(adminUser(), nil)

	_, err := svc.Login(ctx, "alice", "correct horse")

	require.Error(t, err)
	assert.ErrorIs(t, err, issueErr)
}

func TestAuthService_Logout_NoDenylist(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Hasher: &mockauth.FakeHasher{},
		Tokens: &mockauth.FakeTokenService{},
		Logger: discardLogger(),
	})

	assert.NoError(t, svc.Logout(context.Background(), "anything"))
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	tokens := &mockauth.FakeTokenService{}
	denylist := &mockauth.MemoryDenylist{}
	svc := NewAuthService(AuthServiceOptions{
		Hasher:   &mockauth.FakeHasher{},
		Tokens:   tokens,
		Denylist: denylist,
		Logger:   discardLogger(),
	})

	token, err := tokens.Issue(domainauth.Identity{
		UserID:   "user-1",
		Username: "alice",
		Role:     domainauth.RoleAdmin,
	}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.True(t, denylist.Revoked(token))
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	denylist := &mockauth.MemoryDenylist{
		RevokeFunc: func(ctx context.Context, tokenID string, until time.Time) error {
			t.Fatal("revoke should not be called for an unverifiable token")
			return nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Hasher:   &mockauth.FakeHasher{},
		Tokens:   &mockauth.FakeTokenService{},
		Denylist: denylist,
		Logger:   discardLogger(),
	})

	assert.NoError(t, svc.Logout(context.Background(), "never-issued"))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
