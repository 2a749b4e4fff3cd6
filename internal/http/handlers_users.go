package httpx

import (
	"errors"
	"net/http"

	"github.com/shopforge/admin-api/internal/data"
	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/service"
)

// UserHandlers provides HTTP handlers for operator account administration.
type UserHandlers struct {
	Svc *service.UserService
}

const maxUserListLimit = 100

// List handles HTTP requests to list operator accounts with pagination.
// Password hashes never serialize (json:"-" on the model).
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxUserListLimit)

	users, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"users":  users,
		"limit":  limit,
		"offset": offset,
	})
}

// Create handles HTTP requests to provision an operator account.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Provision(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrUsernameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "username_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}
