package bootstrap

import (
	"database/sql"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/shopforge/admin-api/config"
	"github.com/shopforge/admin-api/internal/adapters/credhash"
	redisadapter "github.com/shopforge/admin-api/internal/adapters/redis"
	"github.com/shopforge/admin-api/internal/adapters/token"
	"github.com/shopforge/admin-api/internal/data"
	"github.com/shopforge/admin-api/internal/observability/statsd"
	"github.com/shopforge/admin-api/internal/ports"
	"github.com/shopforge/admin-api/internal/service"
)

// ServiceContainer holds all application services plus the shared token
// verifier the request gate needs.
type ServiceContainer struct {
	Auth     *service.AuthService
	Products *service.ProductService
	Orders   *service.OrderService
	Users    *service.UserService
	Tokens   ports.TokenService
	Metrics  *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// NewServices constructs the full service graph from infrastructure handles.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	userRepo := data.NewUserRepo(deps.DB)
	productRepo := data.NewProductRepo(deps.DB)
	orderRepo := data.NewOrderRepo(deps.DB)

	hasher := credhash.New(cfg.Auth.HashIterations)

	// Denylist is nil unless revocation is enabled; the token service treats
	// nil as "stateless, valid until expiry".
	var denylist ports.TokenDenylist
	if cfg.Auth.RevocationEnabled && deps.RedisClient != nil {
		denylist = redisadapter.NewDenylist(deps.RedisClient)
	}

	tokens, err := token.NewService(token.ServiceOptions{
		Secret:     cfg.Auth.TokenSecret,
		DefaultTTL: cfg.Auth.TokenTTL,
		Denylist:   denylist,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	sink, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Metrics.Enabled,
		Address: cfg.Metrics.Address,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Users:    userRepo,
			Hasher:   hasher,
			Tokens:   tokens,
			Denylist: denylist,
			TokenTTL: cfg.Auth.TokenTTL,
			Logger:   logger,
		}),
		Products: service.NewProductService(service.ProductServiceOptions{Repo: productRepo}),
		Orders:   service.NewOrderService(service.OrderServiceOptions{Repo: orderRepo}),
		Users:    service.NewUserService(service.UserServiceOptions{Repo: userRepo, Hasher: hasher}),
		Tokens:   tokens,
		Metrics:  sink,
	}, nil
}
