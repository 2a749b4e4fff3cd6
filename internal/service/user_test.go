package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/mocks"
	mockauth "github.com/shopforge/admin-api/internal/mocks/auth"
)

func TestUserService_Provision_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Repo: mockRepo, Hasher: &mockauth.FakeHasher{}})

	ctx := context.Background()
	req := &model.CreateUserRequest{Username: "alice", Password: "s3cret", Role: domainauth.RoleAdmin}
	expected := &model.User{ID: "user-1", Username: "alice", Role: domainauth.RoleAdmin}

	mockRepo.EXPECT().
		Create(ctx, req, mockauth.FakeHash("s3cret")).
		Return(expected, nil).
		Times(1)

	got, err := svc.Provision(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestUserService_Provision_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Create expectation: validation failures never reach the repository.
	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Repo: mockRepo, Hasher: &mockauth.FakeHasher{}})

	tests := []struct {
		name string
		req  *model.CreateUserRequest
	}{
		{"missing username", &model.CreateUserRequest{Password: "x", Role: domainauth.RoleAdmin}},
		{"missing password", &model.CreateUserRequest{Username: "alice", Role: domainauth.RoleAdmin}},
		{"bad role", &model.CreateUserRequest{Username: "alice", Password: "x", Role: "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Provision(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestUserService_Provision_HashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	hashErr := errors.New("entropy source unavailable")
	hasher := &mockauth.FakeHasher{
		HashFunc: func(password string) (string, error) { return "", hashErr },
	}
	svc := NewUserService(UserServiceOptions{Repo: mockRepo, Hasher: hasher})

	req := &model.CreateUserRequest{Username: "alice", Password: "s3cret", Role: domainauth.RoleAdmin}
	got, err := svc.Provision(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, hashErr)
	assert.Nil(t, got)
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Repo: mockRepo, Hasher: &mockauth.FakeHasher{}})

	ctx := context.Background()
	expected := []*model.User{{ID: "user-1", Username: "alice"}}

	mockRepo.EXPECT().
		List(ctx, 50, 0).
		Return(expected, nil).
		Times(1)

	got, err := svc.List(ctx, 50, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
