package httpx

import (
	"errors"
	"net/http"

	"github.com/shopforge/admin-api/internal/data"
	"github.com/shopforge/admin-api/internal/domain/model"
	"github.com/shopforge/admin-api/internal/service"
)

// ProductHandlers provides HTTP handlers for catalog operations.
type ProductHandlers struct {
	Svc *service.ProductService
}

const maxProductListLimit = 100

// Create handles HTTP requests to create a new product.
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	product, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrSKUExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "sku_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, product)
}

// List handles HTTP requests to list products with pagination.
func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxProductListLimit)

	products, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a product by ID.
func (h *ProductHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	product, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrProductNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "product_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, product)
}

// Update handles HTTP requests to apply a partial update to a product.
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	var req model.UpdateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	product, err := h.Svc.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrProductNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "product_not_found", Err: err})
		case errors.Is(err, data.ErrSKUExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "sku_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, product)
}

// Delete handles HTTP requests to delete a product.
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrProductNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "product_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
