package ports

import (
	"context"

	"github.com/shopforge/admin-api/internal/domain/model"
)

// UserRepository reads operator accounts from the external store. The core
// never mutates user records; provisioning happens through seeding.
type UserRepository interface {
	// GetByUsername returns the single user with the exact username.
	// More than one matching record is a configuration error, not a choice.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	Create(ctx context.Context, req *model.CreateUserRequest, passwordHash string) (*model.User, error)
}

// ProductRepository provides database operations for products.
type ProductRepository interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, limit, offset int) ([]*model.Product, error)
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository provides database operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, limit, offset int) ([]*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id string) error
}
