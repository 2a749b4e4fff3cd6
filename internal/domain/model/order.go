package model

import (
	"errors"
	"strings"
	"time"
)

// OrderStatus tracks where an order sits in fulfillment.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the order status is supported.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus normalizes a status string and reports whether it is supported.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// OrderItem is a single line of an order, stored as JSONB alongside the order row.
type OrderItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// Order represents a customer order record.
type Order struct {
	ID            string      `json:"id"             db:"id"`
	CustomerName  string      `json:"customer_name"  db:"customer_name"`
	CustomerEmail string      `json:"customer_email" db:"customer_email"`
	Status        OrderStatus `json:"status"         db:"status"`
	TotalCents    int64       `json:"total_cents"    db:"total_cents"`
	Items         []OrderItem `json:"items"          db:"items"`
	CreatedAt     time.Time   `json:"created_at"     db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"     db:"updated_at"`
}

// CreateOrderRequest represents parameters to record an Order.
type CreateOrderRequest struct {
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Status        OrderStatus `json:"status,omitempty"`
	Items         []OrderItem `json:"items"`
}

// Validate validates CreateOrderRequest.
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return errors.New("customer_name is required and cannot be empty")
	}
	if strings.TrimSpace(r.CustomerEmail) == "" {
		return errors.New("customer_email is required and cannot be empty")
	}
	if r.Status != "" && !r.Status.Valid() {
		return errors.New("status must be one of: pending, paid, shipped, cancelled")
	}
	if len(r.Items) == 0 {
		return errors.New("items is required and cannot be empty")
	}
	for _, item := range r.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return errors.New("items cannot contain empty product_id")
		}
		if item.Quantity < 1 {
			return errors.New("item quantity must be at least 1")
		}
		if item.PriceCents < 0 {
			return errors.New("item price_cents must be non-negative")
		}
	}
	return nil
}

// Total sums the request's line items in cents.
func (r *CreateOrderRequest) Total() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}
