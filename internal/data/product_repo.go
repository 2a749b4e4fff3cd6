package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/admin-api/internal/data/pgxutil"
	"github.com/shopforge/admin-api/internal/domain/model"
	apperrors "github.com/shopforge/admin-api/internal/errors"
	"github.com/shopforge/admin-api/internal/ports"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrSKUExists is returned when attempting to create a product with a duplicate SKU.
	ErrSKUExists = errors.New("sku already exists")
)

var _ ports.ProductRepository = (*ProductRepo)(nil)

// ProductRepo provides database operations for products.
type ProductRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProductRepo creates a new ProductRepo with real time provider.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewProductRepoWithTimeProvider creates a new ProductRepo with a custom time provider (useful for tests).
func NewProductRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProductRepo {
	return &ProductRepo{DB: db, timeProvider: tp}
}

const productColumns = "id, sku, name, description, price_cents, stock, image_url, created_at, updated_at"

// Create inserts a new product.
func (r *ProductRepo) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, errors.New("create product request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO products (sku, name, description, price_cents, stock, image_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING `+productColumns,
			strings.TrimSpace(req.SKU),
			strings.TrimSpace(req.Name),
			req.Description,
			req.PriceCents,
			req.Stock,
			req.ImageURL,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		if apperrors.IsUniqueViolation(err, "") {
			return nil, ErrSKUExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return &out, nil
}

// List retrieves products with pagination, newest first.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT "+productColumns+" FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	res := make([]*model.Product, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies the non-nil fields of req to the product.
func (r *ProductRepo) Update(
	ctx context.Context,
	id string,
	req *model.UpdateProductRequest,
) (*model.Product, error) {
	if req == nil {
		return nil, errors.New("update product request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(*req)
	args = append(args, id)

	var out model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			"UPDATE products SET "+setClause+" WHERE id = $"+strconv.Itoa(len(args))+
				" RETURNING "+productColumns,
			args...,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a product based on the request.
func (r *ProductRepo) buildUpdateClause(req model.UpdateProductRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, col+" = $"+strconv.Itoa(len(args)))
	}

	if req.Name != nil {
		add("name", strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.PriceCents != nil {
		add("price_cents", *req.PriceCents)
	}
	if req.Stock != nil {
		add("stock", *req.Stock)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	add("updated_at", r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	var tag int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
		if err != nil {
			return err
		}
		tag = ct.RowsAffected()
		return nil
	}); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag == 0 {
		return ErrProductNotFound
	}
	return nil
}
