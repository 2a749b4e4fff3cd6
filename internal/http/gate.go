package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strings"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/ports"
)

// RouteClass is the access class assigned to a request path before any
// handler runs.
type RouteClass int

const (
	// RoutePublic passes through unconditionally.
	RoutePublic RouteClass = iota
	// RouteProtectedAPI requires a verified bearer token with the admin role.
	RouteProtectedAPI
	// RouteProtectedPage passes through; page-level enforcement is advisory
	// because navigation decisions belong to the client session controller.
	RouteProtectedPage
)

func (c RouteClass) String() string {
	switch c {
	case RoutePublic:
		return "public"
	case RouteProtectedAPI:
		return "protected-api"
	case RouteProtectedPage:
		return "protected-page"
	default:
		return "unknown"
	}
}

// staticAssetExtensions lists suffixes served without any auth check even
// outside the /static/ prefix (favicons, source maps requested at root).
var staticAssetExtensions = map[string]bool{ //nolint:gochecknoglobals // read-only lookup table
	".css":   true,
	".js":    true,
	".map":   true,
	".ico":   true,
	".png":   true,
	".jpg":   true,
	".svg":   true,
	".woff":  true,
	".woff2": true,
}

// publicPaths is the explicit allow-list: the login page, the login endpoint,
// and the health probe.
var publicPaths = map[string]bool{ //nolint:gochecknoglobals // read-only lookup table
	"/login":      true,
	"/auth/login": true,
	"/healthz":    true,
}

// Classify assigns exactly one RouteClass to a request path. Ordered, first
// match wins: static assets, then the public allow-list, then the API
// namespaces, everything else is a page.
func Classify(reqPath string) RouteClass {
	if strings.HasPrefix(reqPath, "/static/") || staticAssetExtensions[path.Ext(reqPath)] {
		return RoutePublic
	}
	if publicPaths[reqPath] {
		return RoutePublic
	}
	// The remaining /auth/ endpoints (logout, me) operate on the caller's own
	// session and carry a bearer token like any data endpoint.
	if strings.HasPrefix(reqPath, "/api/") || strings.HasPrefix(reqPath, "/auth/") {
		return RouteProtectedAPI
	}
	return RouteProtectedPage
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns "" when the header is absent or not a bearer scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Gate returns the request-gate middleware. It classifies the path and
// enforces the class policy before the request reaches any handler:
//
//   - public: pass through.
//   - protected-api: verified admin bearer token or 401/403. The verified
//     claims are attached to the request context on success.
//   - protected-page: pass through, attaching claims when a valid token
//     happens to be present. Pages never get blocked or redirected here; the
//     client session controller owns navigation.
func Gate(tokens ports.TokenService, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Classify(r.URL.Path) {
			case RoutePublic:
				next.ServeHTTP(w, r)

			case RouteProtectedAPI:
				claims, err := verifyRequest(r, tokens)
				if err != nil {
					logger.InfoContext(r.Context(), "request rejected",
						slog.String("path", r.URL.Path),
						slog.String("reason", err.Error()),
					)
					WriteError(w, ErrorParams{
						Code:    http.StatusUnauthorized,
						ErrCode: "unauthenticated",
						Err:     errors.New("invalid or expired session"),
					})
					return
				}
				if !claims.IsAdmin() {
					logger.InfoContext(r.Context(), "request forbidden",
						slog.String("path", r.URL.Path),
						slog.String("username", claims.Username),
						slog.String("role", string(claims.Role)),
					)
					WriteError(w, ErrorParams{
						Code:    http.StatusForbidden,
						ErrCode: "forbidden",
						Err:     errors.New("admin privileges required"),
					})
					return
				}
				next.ServeHTTP(w, r.WithContext(SetClaimsInContext(r.Context(), claims)))

			case RouteProtectedPage:
				next.ServeHTTP(w, r.WithContext(advisoryClaims(r, tokens)))

			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

var errMissingBearer = errors.New("missing bearer token")

// verifyRequest extracts and verifies the bearer token for a protected-api
// request. The error describes the cause for the server log only; the client
// always receives the same generic message.
func verifyRequest(r *http.Request, tokens ports.TokenService) (domainauth.Claims, error) {
	raw := BearerToken(r)
	if raw == "" {
		return domainauth.Claims{}, errMissingBearer
	}
	return tokens.Verify(r.Context(), raw)
}

// advisoryClaims attaches claims to a page request when a valid token is
// present, so page handlers can personalize. Verification failures are
// ignored on purpose.
func advisoryClaims(r *http.Request, tokens ports.TokenService) context.Context {
	ctx := r.Context()
	raw := BearerToken(r)
	if raw == "" {
		return ctx
	}
	claims, err := tokens.Verify(ctx, raw)
	if err != nil {
		return ctx
	}
	return SetClaimsInContext(ctx, claims)
}
