package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. ImageURL holds the stored object key until the
// catalog service resolves it to a fetchable URL.
type Product struct {
	ID            uuid.UUID `json:"productId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stockQuantity"`
	ImageURL      string    `json:"imageUrl"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductQuery describes a catalog listing request after parsing. Page is
// zero-based; Sort is a column name optionally prefixed with '-' for
// descending order.
type ProductQuery struct {
	Category string
	MinPrice float64
	MaxPrice float64
	Page     int
	Size     int
	Sort     string
}

// ProductPage is one page of catalog results plus pagination totals.
type ProductPage struct {
	Items      []Product `json:"items"`
	TotalItems int64     `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// ProductStore defines read operations over the product catalog.
type ProductStore interface {
	List(ctx context.Context, query ProductQuery) ([]Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	Categories(ctx context.Context) ([]string, error)
}
