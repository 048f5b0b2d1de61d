package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

// Listing requests without an upper bound get this price ceiling.
const maxPriceCeiling = 999_999_999

// ImageResolver turns a stored image object key into a fetchable URL.
type ImageResolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}

// Catalog serves the paginated, filterable product listing. It is a pure
// query-translation layer: clamp and normalize the request, delegate to the
// store, derive pagination totals.
type Catalog struct {
	products        model.ProductStore
	images          ImageResolver
	defaultPageSize int
	maxPageSize     int
	logger          *logger.Logger
}

// NewCatalog creates the catalog service. images may be nil, in which case
// stored image values are returned as-is.
func NewCatalog(products model.ProductStore, images ImageResolver, defaultPageSize, maxPageSize int, logger *logger.Logger) *Catalog {
	return &Catalog{
		products:        products,
		images:          images,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
}

func (c *Catalog) normalize(q model.ProductQuery) model.ProductQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = c.defaultPageSize
	}
	if q.Size > c.maxPageSize {
		q.Size = c.maxPageSize
	}
	if q.MinPrice < 0 {
		q.MinPrice = 0
	}
	if q.MaxPrice <= 0 {
		q.MaxPrice = maxPriceCeiling
	}
	if q.Sort == "" {
		q.Sort = "name"
	}
	return q
}

// ListProducts returns one page of the catalog.
func (c *Catalog) ListProducts(ctx context.Context, q model.ProductQuery) (model.ProductPage, error) {
	q = c.normalize(q)

	c.logger.Debug("catalog service: listing products",
		"category", q.Category, "page", q.Page, "size", q.Size, "sort", q.Sort)

	items, total, err := c.products.List(ctx, q)
	if err != nil {
		return model.ProductPage{}, fmt.Errorf("failed to list products: %w", err)
	}

	for i := range items {
		items[i] = c.resolveImage(ctx, items[i])
	}

	totalPages := int(total / int64(q.Size))
	if total%int64(q.Size) != 0 {
		totalPages++
	}

	return model.ProductPage{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// GetProduct returns a single product by ID.
func (c *Catalog) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := c.products.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	return c.resolveImage(ctx, product), nil
}

// ListCategories returns the distinct product categories.
func (c *Catalog) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := c.products.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// resolveImage swaps the stored object key for a presigned URL. Resolution
// failure keeps the stored value; a broken image link must not fail a
// listing.
func (c *Catalog) resolveImage(ctx context.Context, p model.Product) model.Product {
	if c.images == nil || p.ImageURL == "" {
		return p
	}

	url, err := c.images.ResolveURL(ctx, p.ImageURL)
	if err != nil {
		c.logger.Error("catalog service: failed to resolve image url",
			"product_id", p.ID, "error", err.Error())
		return p
	}

	p.ImageURL = url
	return p
}
