// Package router wires handlers and middleware into HTTP route tables.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akarpov/storefront/internal/api/http/handler"
	"github.com/akarpov/storefront/internal/api/http/middleware"
	"github.com/akarpov/storefront/internal/logger"
)

// Identity builds the route table for the identity service.
type Identity struct {
	auth    handler.AuthService
	profile handler.ProfileService
	logger  *logger.Logger
}

// NewIdentity creates a new Identity router.
func NewIdentity(auth handler.AuthService, profile handler.ProfileService, logger *logger.Logger) *Identity {
	return &Identity{
		auth:    auth,
		profile: profile,
		logger:  logger,
	}
}

// Register builds the identity service routes with request logging.
func (r *Identity) Register() *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.NewLogging(r.logger).Handle)

	authHandler := handler.NewAuth(r.auth, r.logger)
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	profileHandler := handler.NewProfile(r.profile, r.logger)
	router.HandleFunc("/api/v1/users/profile", profileHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/users/profile", profileHandler.Update).Methods(http.MethodPut)

	router.HandleFunc("/health", health).Methods(http.MethodGet)

	return router
}

// Catalog builds the route table for the catalog service.
type Catalog struct {
	catalog handler.CatalogService
	logger  *logger.Logger
}

// NewCatalog creates a new Catalog router.
func NewCatalog(catalog handler.CatalogService, logger *logger.Logger) *Catalog {
	return &Catalog{
		catalog: catalog,
		logger:  logger,
	}
}

// Register builds the catalog service routes with request logging.
func (r *Catalog) Register() *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.NewLogging(r.logger).Handle)

	productHandler := handler.NewProduct(r.catalog, r.logger)
	// Static path before the ID pattern so "categories" is never parsed as an ID.
	router.HandleFunc("/api/v1/products/categories", productHandler.Categories).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/products/{productId}", productHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/products", productHandler.List).Methods(http.MethodGet)

	router.HandleFunc("/health", health).Methods(http.MethodGet)

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
