package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/domain/model"
)

func newTestAPI(t *testing.T, handler http.Handler) (*API, *Session) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := NewSession(SessionOptions{
		Slot: NewTokenSlotAt(filepath.Join(t.TempDir(), "session.token")),
	})
	require.NoError(t, session.Start())

	return NewAPI(APIOptions{BaseURL: srv.URL, Session: session}), session
}

func writeJSON(t *testing.T, w http.ResponseWriter, code int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestAPI_Login(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req["username"])
		require.Equal(t, "s3cret", req["password"])

		writeJSON(t, w, http.StatusOK, map[string]string{"token": "tok-1"})
	}))

	token, err := api.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestAPI_LoginRejected(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{
			"error":   "invalid_credentials",
			"message": "invalid credentials",
		})
	}))

	_, err := api.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAPI_LoginForbidden(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]string{
			"error":   "admin_required",
			"message": "admin privileges required",
		})
	}))

	_, err := api.Login(context.Background(), "bob", "s3cret")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAPI_BearerHeader(t *testing.T) {
	var gotAuth string
	api, session := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, domainauth.Identity{UserID: "u1", Username: "alice", Role: domainauth.RoleAdmin})
	}))

	require.NoError(t, session.SetToken("tok-77"))

	id, err := api.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-77", gotAuth)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, domainauth.RoleAdmin, id.Role)
}

func TestAPI_NoHeaderWhenSignedOut(t *testing.T) {
	var gotAuth string
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, map[string]any{"products": []model.Product{}})
	}))

	_, err := api.ListProducts(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestAPI_ListProducts(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "25", r.URL.Query().Get("limit"))
		require.Equal(t, "50", r.URL.Query().Get("offset"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"products": []model.Product{
				{ID: "p1", SKU: "MUG-CLASSIC", Name: "Classic Mug", PriceCents: 1299, Stock: 42},
			},
			"limit":  25,
			"offset": 50,
		})
	}))

	products, err := api.ListProducts(context.Background(), 25, 50)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "MUG-CLASSIC", products[0].SKU)
	assert.EqualValues(t, 1299, products[0].PriceCents)
}

func TestAPI_SetOrderStatus(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/orders/o1/status", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "shipped", req["status"])

		writeJSON(t, w, http.StatusOK, model.Order{ID: "o1", Status: model.OrderStatusShipped})
	}))

	order, err := api.SetOrderStatus(context.Background(), "o1", "shipped")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, order.Status)
}

func TestAPI_NonJSONErrorBody(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))

	_, err := api.ListOrders(context.Background(), 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAPI_Logout(t *testing.T) {
	api, session := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, session.SetToken("tok"))

	require.NoError(t, api.Logout(context.Background()))
}
