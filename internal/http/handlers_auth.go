package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopforge/admin-api/internal/service"
)

// AuthHandlers provides HTTP handlers for login, logout, and identity echo.
type AuthHandlers struct {
	Svc    *service.AuthService
	Logger *slog.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /auth/login. Credential failures map to a single 401
// regardless of sub-cause; only the role rejection is distinct (403) because
// it leaks nothing useful for credential guessing.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
		case errors.Is(err, service.ErrInsufficientRole):
			WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "admin_required", Err: err})
		default:
			// Infrastructure detail stays in the server log.
			if h.Logger != nil {
				h.Logger.ErrorContext(r.Context(), "login failed", slog.Any("error", err))
			}
			WriteError(w, ErrorParams{
				Code:    http.StatusInternalServerError,
				ErrCode: "login_failed",
				Err:     errors.New("authentication unavailable"),
			})
		}
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}

// Logout handles POST /auth/logout. The gate already verified the bearer
// token; revocation failures surface as 500 so the client can retry.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(r.Context(), BearerToken(r)); err != nil {
		if h.Logger != nil {
			h.Logger.ErrorContext(r.Context(), "logout failed", slog.Any("error", err))
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "logout_failed",
			Err:     errors.New("logout failed"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me, echoing the verified identity for clients that
// need to display who is signed in.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetClaimsFromContext(r.Context())
	if !ok {
		// The gate attaches claims before any protected handler runs; absence
		// means the route was registered outside the gate.
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "unauthenticated",
			Err:     errors.New("invalid or expired session"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, claims.Identity())
}
