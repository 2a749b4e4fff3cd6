package service

import (
	"context"

	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/ports"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Repo ports.OrderRepository
}

// OrderService orchestrates order record operations.
type OrderService struct {
	repo ports.OrderRepository
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{repo: opts.Repo}
}

// Create records a new order.
func (s *OrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves an order by ID.
func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves orders with pagination.
func (s *OrderService) List(ctx context.Context, limit, offset int) ([]*model.Order, error) {
	return s.repo.List(ctx, limit, offset)
}

// SetStatus moves an order to a new fulfillment status.
func (s *OrderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return s.repo.SetStatus(ctx, id, status)
}

// Delete removes an order record.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
