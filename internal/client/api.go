package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/shopforge/admin-api/internal/domain/auth"
	"github.com/shopforge/admin-api/internal/domain/model"
)

// Sentinel errors mapped from the server's status codes. Callers match
// with errors.Is; the server's message rides along in the wrapped error.
var (
	ErrUnauthenticated = errors.New("invalid or expired session")
	ErrForbidden       = errors.New("admin privileges required")
)

// API is the HTTP client for the admin console backend. The bearer
// token is pulled from the session on every request so a login during
// the process lifetime is picked up without rebuilding the client.
type API struct {
	baseURL string
	http    *http.Client
	session *Session
}

// APIOptions configures NewAPI.
type APIOptions struct {
	BaseURL string
	Session *Session
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

func NewAPI(opts APIOptions) *API {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &API{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		session: opts.Session,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do runs one request and decodes the response into out when out is
// non-nil. Non-2xx responses become errors, with 401 and 403 mapped to
// their sentinels.
func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := a.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return a.asError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (a *API) asError(resp *http.Response) error {
	var body errorBody
	// A non-JSON error body still maps to the right sentinel.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, ErrUnauthenticated)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, ErrForbidden)
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, msg)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. The token is NOT
// stored; the caller decides whether to commit it to the session.
func (a *API) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := a.do(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout revokes the current token on the server.
func (a *API) Logout(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me returns the identity behind the current token.
func (a *API) Me(ctx context.Context) (domainauth.Identity, error) {
	var id domainauth.Identity
	err := a.do(ctx, http.MethodGet, "/auth/me", nil, &id)
	return id, err
}

type productListResponse struct {
	Products []model.Product `json:"products"`
}

// ListProducts fetches up to limit products starting at offset.
func (a *API) ListProducts(ctx context.Context, limit, offset int) ([]model.Product, error) {
	var resp productListResponse
	path := fmt.Sprintf("/api/products?limit=%d&offset=%d", limit, offset)
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// GetProduct fetches a single product by ID.
func (a *API) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := a.do(ctx, http.MethodGet, "/api/products/"+id, nil, &p)
	return p, err
}

// CreateProduct creates a product and returns the stored record.
func (a *API) CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.Product, error) {
	var p model.Product
	err := a.do(ctx, http.MethodPost, "/api/products", req, &p)
	return p, err
}

// DeleteProduct removes a product by ID.
func (a *API) DeleteProduct(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

type orderListResponse struct {
	Orders []model.Order `json:"orders"`
}

// ListOrders fetches up to limit orders starting at offset.
func (a *API) ListOrders(ctx context.Context, limit, offset int) ([]model.Order, error) {
	var resp orderListResponse
	path := fmt.Sprintf("/api/orders?limit=%d&offset=%d", limit, offset)
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// GetOrder fetches a single order by ID.
func (a *API) GetOrder(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	err := a.do(ctx, http.MethodGet, "/api/orders/"+id, nil, &o)
	return o, err
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetOrderStatus moves an order to the given status.
func (a *API) SetOrderStatus(ctx context.Context, id, status string) (model.Order, error) {
	var o model.Order
	err := a.do(ctx, http.MethodPatch, "/api/orders/"+id+"/status", setStatusRequest{Status: status}, &o)
	return o, err
}
