package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
)

func strPtr(s string) *string { return &s }

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr string
	}{
		{"valid admin", CreateUserRequest{Username: "ops", Password: "pw", Role: domainauth.RoleAdmin}, ""},
		{"empty username", CreateUserRequest{Password: "pw", Role: domainauth.RoleAdmin}, "username is required"},
		{"long username", CreateUserRequest{Username: strings.Repeat("a", 65), Password: "pw", Role: domainauth.RoleAdmin}, "cannot exceed"},
		{"empty password", CreateUserRequest{Username: "ops", Role: domainauth.RoleAdmin}, "password is required"},
		{"bad role", CreateUserRequest{Username: "ops", Password: "pw", Role: "root"}, "must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := CreateProductRequest{SKU: "SKU-1", Name: "Lamp", PriceCents: 1999, Stock: 3}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.PriceCents = -1
	require.Error(t, bad.Validate())

	bad = valid
	bad.ImageURL = strPtr("ftp://assets.example.com/lamp.png")
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestUpdateProductRequest_Validate_RequiresAField(t *testing.T) {
	var req UpdateProductRequest
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")
}

func TestParseOrderStatus(t *testing.T) {
	got, ok := ParseOrderStatus("  Paid ")
	require.True(t, ok)
	assert.Equal(t, OrderStatusPaid, got)

	_, ok = ParseOrderStatus("refunded")
	assert.False(t, ok)
}

func TestCreateOrderRequest_ValidateAndTotal(t *testing.T) {
	req := CreateOrderRequest{
		CustomerName:  "Pat",
		CustomerEmail: "pat@example.com",
		Items: []OrderItem{
			{ProductID: "p-1", Name: "Lamp", Quantity: 2, PriceCents: 1999},
			{ProductID: "p-2", Name: "Desk", Quantity: 1, PriceCents: 14999},
		},
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, int64(2*1999+14999), req.Total())

	req.Items[0].Quantity = 0
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
}
