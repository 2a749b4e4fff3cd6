package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxProductNameLen = 255
	maxSKULen         = 64
)

// Product represents a catalog listing managed through the console.
type Product struct {
	ID          string    `json:"id"                    db:"id"`
	SKU         string    `json:"sku"                   db:"sku"`
	Name        string    `json:"name"                  db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	PriceCents  int64     `json:"price_cents"           db:"price_cents"`
	Stock       int       `json:"stock"                 db:"stock"`
	ImageURL    *string   `json:"image_url,omitempty"   db:"image_url"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`
}

// CreateProductRequest represents parameters to create a Product.
type CreateProductRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents"`
	Stock       int     `json:"stock"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateProductRequest represents parameters to update a Product.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Validate validates CreateProductRequest.
func (r *CreateProductRequest) Validate() error {
	sku := strings.TrimSpace(r.SKU)
	if sku == "" {
		return errors.New("sku is required and cannot be empty")
	}
	if utf8.RuneCountInString(sku) > maxSKULen {
		return errors.New("sku cannot exceed 64 characters")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxProductNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if r.PriceCents < 0 {
		return errors.New("price_cents must be non-negative")
	}
	if r.Stock < 0 {
		return errors.New("stock must be non-negative")
	}
	return validateImageURL(r.ImageURL)
}

// Validate validates UpdateProductRequest.
func (r *UpdateProductRequest) Validate() error {
	if r.Name == nil && r.Description == nil && r.PriceCents == nil && r.Stock == nil && r.ImageURL == nil {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("name is required and cannot be empty")
		}
		if utf8.RuneCountInString(name) > maxProductNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.PriceCents != nil && *r.PriceCents < 0 {
		return errors.New("price_cents must be non-negative")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return errors.New("stock must be non-negative")
	}
	return validateImageURL(r.ImageURL)
}

// validateImageURL accepts an absent URL; a present one must be absolute http(s).
func validateImageURL(raw *string) error {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	u, err := url.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return errors.New("image_url must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("image_url must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("image_url must have a valid host")
	}
	return nil
}
