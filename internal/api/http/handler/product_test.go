package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/storefront/internal/mocks"
	"github.com/akarpov/storefront/internal/model"
	"github.com/akarpov/storefront/internal/testutil"
)

func TestProduct_List(t *testing.T) {
	page := model.ProductPage{
		Items:      []model.Product{{ID: uuid.New(), Name: "anvil", Price: 99.99}},
		TotalItems: 1,
		TotalPages: 1,
	}

	tests := map[string]struct {
		target     string
		setupMock  func(m *mocks.CatalogService)
		wantStatus int
	}{
		"no filters": {
			target: "/api/v1/products",
			setupMock: func(m *mocks.CatalogService) {
				m.On("ListProducts", mock.Anything, model.ProductQuery{}).Return(page, nil)
			},
			wantStatus: http.StatusOK,
		},
		"all filters": {
			target: "/api/v1/products?category=tools&minPrice=10&maxPrice=200&page=2&size=5&sort=-price",
			setupMock: func(m *mocks.CatalogService) {
				m.On("ListProducts", mock.Anything, model.ProductQuery{
					Category: "tools",
					MinPrice: 10,
					MaxPrice: 200,
					Page:     2,
					Size:     5,
					Sort:     "-price",
				}).Return(page, nil)
			},
			wantStatus: http.StatusOK,
		},
		"bad min price": {
			target:     "/api/v1/products?minPrice=cheap",
			setupMock:  func(m *mocks.CatalogService) {},
			wantStatus: http.StatusBadRequest,
		},
		"bad page": {
			target:     "/api/v1/products?page=first",
			setupMock:  func(m *mocks.CatalogService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			service := &mocks.CatalogService{}
			tt.setupMock(service)

			h := NewProduct(service, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got model.ProductPage
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, page.TotalItems, got.TotalItems)
			}
			service.AssertExpectations(t)
		})
	}
}

func TestProduct_Get(t *testing.T) {
	productID := uuid.New()
	product := model.Product{ID: productID, Name: "anvil", Price: 99.99}

	tests := map[string]struct {
		pathID     string
		setupMock  func(m *mocks.CatalogService)
		wantStatus int
	}{
		"success": {
			pathID: productID.String(),
			setupMock: func(m *mocks.CatalogService) {
				m.On("GetProduct", mock.Anything, productID).Return(product, nil)
			},
			wantStatus: http.StatusOK,
		},
		"not found": {
			pathID: productID.String(),
			setupMock: func(m *mocks.CatalogService) {
				m.On("GetProduct", mock.Anything, productID).Return(model.Product{}, model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		"bad id": {
			pathID:     "not-a-uuid",
			setupMock:  func(m *mocks.CatalogService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			service := &mocks.CatalogService{}
			tt.setupMock(service)

			h := NewProduct(service, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tt.pathID, nil)
			req = mux.SetURLVars(req, map[string]string{"productId": tt.pathID})
			rec := httptest.NewRecorder()

			h.Get(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestProduct_Categories(t *testing.T) {
	service := &mocks.CatalogService{}
	service.On("ListCategories", mock.Anything).Return([]string{"forge", "tools"}, nil)

	h := NewProduct(service, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got categoriesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []string{"forge", "tools"}, got.Categories)
	service.AssertExpectations(t)
}
