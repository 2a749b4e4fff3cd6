package service

import (
	"context"

	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/ports"
)

// ProductServiceOptions groups dependencies for ProductService.
type ProductServiceOptions struct {
	Repo ports.ProductRepository
}

// ProductService orchestrates catalog operations. The screens it backs are
// presentational CRUD; validation lives with the request types and the repo.
type ProductService struct {
	repo ports.ProductRepository
}

// NewProductService constructs a new ProductService.
func NewProductService(opts ProductServiceOptions) *ProductService {
	return &ProductService{repo: opts.Repo}
}

// Create adds a product to the catalog.
func (s *ProductService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a product by ID.
func (s *ProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves products with pagination.
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]*model.Product, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update applies a partial update to a product.
func (s *ProductService) Update(
	ctx context.Context,
	id string,
	req *model.UpdateProductRequest,
) (*model.Product, error) {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
