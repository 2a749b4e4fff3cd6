// Package mocks provides mock implementations for testing the shopforge admin API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// repository interfaces in internal/ports. The mocks are generated with go:generate
// directives and committed so tests build without a codegen step.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockProductRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(product, nil)
//
// Hand-written doubles for the auth ports (PasswordHasher, TokenService,
// TokenDenylist) live in the auth subpackage; their behavior-heavy contracts
// read better as func-field fakes than as recorded expectations.
package mocks

// Generate mock for UserRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/shopforge/admin-api/internal/ports UserRepository

// Generate mock for ProductRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=product_repository_mock.go github.com/shopforge/admin-api/internal/ports ProductRepository

// Generate mock for OrderRepository interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=order_repository_mock.go github.com/shopforge/admin-api/internal/ports OrderRepository
