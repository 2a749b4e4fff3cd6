// Package devseed populates a development database with an admin account and
// a small catalog so the UI and CLI have something to show. Seeding is
// idempotent: records that already exist are skipped, never overwritten.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/shopforge/admin-api/internal/adapters/credhash"
	"github.com/shopforge/admin-api/internal/data"
	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	users    *service.UserService
	products *service.ProductService
	orders   *service.OrderService
}

// NewServices constructs the services required for seeding from the provided DB.
func NewServices(db *sql.DB, hashIterations int) Services {
	hasher := credhash.New(hashIterations)
	return Services{
		users: service.NewUserService(service.UserServiceOptions{
			Repo:   data.NewUserRepo(db),
			Hasher: hasher,
		}),
		products: service.NewProductService(service.ProductServiceOptions{
			Repo: data.NewProductRepo(db),
		}),
		orders: service.NewOrderService(service.OrderServiceOptions{
			Repo: data.NewOrderRepo(db),
		}),
	}
}

// Run executes the development seeding workflow. Individual failures are
// logged and counted rather than aborting the whole seed.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedAdminUser(ctx, svcs.users, logger); err != nil {
		return err
	}
	failures := seedProducts(ctx, svcs.products, logger)
	failures += seedOrders(ctx, svcs.orders, logger)

	if failures > 0 {
		logger.WarnContext(ctx, "dev seed finished with failures", "failures", failures)
	} else {
		logger.InfoContext(ctx, "dev seed finished")
	}
	return nil
}

// seedAdminUser provisions the development admin account. The password comes
// from DEV_ADMIN_PASSWORD so even dev credentials never live in source.
func seedAdminUser(ctx context.Context, users *service.UserService, logger *slog.Logger) error {
	password := os.Getenv("DEV_ADMIN_PASSWORD")
	if password == "" {
		logger.WarnContext(ctx, "DEV_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := users.Provision(ctx, &model.CreateUserRequest{
		Username: "admin",
		Password: password,
		Role:     domainauth.RoleAdmin,
	})
	switch {
	case err == nil:
		logger.InfoContext(ctx, "seeded admin user", "username", "admin")
		return nil
	case errors.Is(err, data.ErrUsernameExists):
		logger.InfoContext(ctx, "admin user already present, skipping")
		return nil
	default:
		return err
	}
}

func seedProducts(ctx context.Context, products *service.ProductService, logger *slog.Logger) int {
	desc := func(s string) *string { return &s }

	seeds := []model.CreateProductRequest{
		{SKU: "MUG-CLASSIC", Name: "Classic Mug", Description: desc("Stoneware mug, 350ml"), PriceCents: 1250, Stock: 40},
		{SKU: "TEE-LOGO-M", Name: "Logo Tee (M)", Description: desc("Unisex cotton tee, medium"), PriceCents: 2200, Stock: 25},
		{SKU: "TOTE-CANVAS", Name: "Canvas Tote", PriceCents: 1800, Stock: 60},
		{SKU: "STICKER-PACK", Name: "Sticker Pack", Description: desc("Five assorted vinyl stickers"), PriceCents: 500, Stock: 200},
	}

	failures := 0
	for i := range seeds {
		_, err := products.Create(ctx, &seeds[i])
		switch {
		case err == nil:
			logger.InfoContext(ctx, "seeded product", "sku", seeds[i].SKU)
		case errors.Is(err, data.ErrSKUExists):
			logger.InfoContext(ctx, "product already present, skipping", "sku", seeds[i].SKU)
		default:
			logger.WarnContext(ctx, "seed product failed", "sku", seeds[i].SKU, "error", err)
			failures++
		}
	}
	return failures
}

func seedOrders(ctx context.Context, orders *service.OrderService, logger *slog.Logger) int {
	existing, err := orders.List(ctx, 1, 0)
	if err != nil {
		logger.WarnContext(ctx, "seed orders: list failed", "error", err)
		return 1
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "orders already present, skipping")
		return 0
	}

	seeds := []model.CreateOrderRequest{
		{
			CustomerName:  "Sam Carter",
			CustomerEmail: "sam.carter@example.com",
			Items: []model.OrderItem{
				{ProductID: "seed", Name: "Classic Mug", Quantity: 2, PriceCents: 1250},
				{ProductID: "seed", Name: "Sticker Pack", Quantity: 1, PriceCents: 500},
			},
		},
		{
			CustomerName:  "Ira Patel",
			CustomerEmail: "ira.patel@example.com",
			Status:        model.OrderStatusPaid,
			Items: []model.OrderItem{
				{ProductID: "seed", Name: "Canvas Tote", Quantity: 1, PriceCents: 1800},
			},
		},
	}

	failures := 0
	for i := range seeds {
		if _, err := orders.Create(ctx, &seeds[i]); err != nil {
			logger.WarnContext(ctx, "seed order failed", "customer", seeds[i].CustomerName, "error", err)
			failures++
			continue
		}
		logger.InfoContext(ctx, "seeded order", "customer", seeds[i].CustomerName)
	}
	return failures
}
