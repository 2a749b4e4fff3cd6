package httpx

import (
	"log/slog"
	"net/http"

	"github.com/shopforge/admin-api/internal/ports"
	"github.com/shopforge/admin-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     *service.AuthService
	Products *service.ProductService
	Orders   *service.OrderService
	Users    *service.UserService
	// Tokens verifies bearer tokens inside the request gate.
	Tokens ports.TokenService
	// StaticDir is the on-disk directory served under /static/.
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter creates the HTTP handler tree: the mux wrapped by the request
// gate, so every route (including ones added later) passes classification
// before its handler runs.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, Logger: logger}
	mux.HandleFunc("POST /auth/login", authHandlers.Login)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/me", authHandlers.Me)

	registerProductRoutes(mux, &ProductHandlers{Svc: services.Products})
	registerOrderRoutes(mux, &OrderHandlers{Svc: services.Orders})
	registerUserRoutes(mux, &UserHandlers{Svc: services.Users})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.StaticDir != "" {
		mux.Handle("GET /static/", staticHandler(services.StaticDir))
	}

	// Everything not matched above is a page route; the shell handler covers
	// the login page and all client-rendered screens.
	mux.Handle("/", PageHandler{})

	return Gate(services.Tokens, logger)(mux)
}

func registerProductRoutes(mux *http.ServeMux, h *ProductHandlers) {
	mux.HandleFunc("POST /api/products", h.Create)
	mux.HandleFunc("GET /api/products", h.List)
	mux.HandleFunc("GET /api/products/{id}", h.GetByID)
	mux.HandleFunc("PATCH /api/products/{id}", h.Update)
	mux.HandleFunc("DELETE /api/products/{id}", h.Delete)
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers) {
	mux.HandleFunc("POST /api/orders", h.Create)
	mux.HandleFunc("GET /api/orders", h.List)
	mux.HandleFunc("GET /api/orders/{id}", h.GetByID)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.SetStatus)
	mux.HandleFunc("DELETE /api/orders/{id}", h.Delete)
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers) {
	mux.HandleFunc("GET /api/users", h.List)
	mux.HandleFunc("POST /api/users", h.Create)
}

// staticHandler serves on-disk assets under /static/ with conservative cache
// headers. Assets are not content-hashed, so revalidation stays cheap and
// correct after a deploy.
func staticHandler(dir string) http.Handler {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=300, must-revalidate")
		fileServer.ServeHTTP(w, r)
	})
}
