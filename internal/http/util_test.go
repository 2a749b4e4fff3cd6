package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimitOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 50, 0},
		{"explicit", "limit=10&offset=20", 10, 20},
		{"clamped high", "limit=500", 100, 0},
		{"clamped low", "limit=0&offset=-3", 1, 0},
		{"garbage ignored", "limit=abc&offset=xyz", 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/products?"+tt.query, nil)
			limit, offset := ParseLimitOffset(r, 50, 100)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, isValidationError(errors.New("sku is required and cannot be empty")))
	assert.True(t, isValidationError(errors.New("price_cents must be non-negative")))
	assert.True(t, isValidationError(errors.New("status must be one of: pending, paid, shipped, cancelled")))
	assert.False(t, isValidationError(errors.New("connection refused")))
	assert.False(t, isValidationError(nil))
}
