package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

// CatalogService defines the read operations exposed by the product API.
type CatalogService interface {
	ListProducts(ctx context.Context, query model.ProductQuery) (model.ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// Product handles HTTP endpoints for the product catalog.
type Product struct {
	service CatalogService
	logger  *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(service CatalogService, logger *logger.Logger) *Product {
	return &Product{
		service: service,
		logger:  logger,
	}
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// List returns one page of the catalog filtered by the query parameters.
func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseProductQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := h.service.ListProducts(r.Context(), query)
	if err != nil {
		h.logger.Error("product handler: list failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Get returns a single product by its path ID.
func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		writeError(w, model.NewValidationError("productId", "must be a valid UUID"))
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Error("product handler: get failed", "product_id", id, "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories returns the distinct categories present in the catalog.
func (h *Product) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("product handler: categories failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{Categories: categories})
}

func parseProductQuery(r *http.Request) (model.ProductQuery, error) {
	values := r.URL.Query()

	query := model.ProductQuery{
		Category: values.Get("category"),
		Sort:     values.Get("sort"),
	}

	var err error
	if query.MinPrice, err = parseFloatParam(values.Get("minPrice")); err != nil {
		return model.ProductQuery{}, model.NewValidationError("minPrice", "must be a number")
	}
	if query.MaxPrice, err = parseFloatParam(values.Get("maxPrice")); err != nil {
		return model.ProductQuery{}, model.NewValidationError("maxPrice", "must be a number")
	}
	if query.Page, err = parseIntParam(values.Get("page")); err != nil {
		return model.ProductQuery{}, model.NewValidationError("page", "must be an integer")
	}
	if query.Size, err = parseIntParam(values.Get("size")); err != nil {
		return model.ProductQuery{}, model.NewValidationError("size", "must be an integer")
	}

	return query, nil
}

func parseFloatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
