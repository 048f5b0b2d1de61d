// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"net"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/akarpov/storefront/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (model.User, error) {
	args := m.Called(ctx, id, displayName)
	return args.Get(0).(model.User), args.Error(1)
}

// SecretHasher is a mock implementation of model.SecretHasher.
type SecretHasher struct {
	mock.Mock
}

func (m *SecretHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *SecretHasher) Verify(plaintext, hash string) (bool, error) {
	args := m.Called(plaintext, hash)
	return args.Bool(0), args.Error(1)
}

// TokenIssuer is a mock implementation of model.TokenIssuer.
type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Issue(subject string) (model.Token, error) {
	args := m.Called(subject)
	return args.Get(0).(model.Token), args.Error(1)
}

func (m *TokenIssuer) Validate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *TokenIssuer) Refresh(token string) (model.Token, error) {
	args := m.Called(token)
	return args.Get(0).(model.Token), args.Error(1)
}

// EventEmitter is a mock implementation of model.EventEmitter.
type EventEmitter struct {
	mock.Mock
}

func (m *EventEmitter) Emit(event model.IdentityEvent) {
	m.Called(event)
}

// SecurityLayer is a mock implementation of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(net.Listener), args.Error(1)
}

// AuthService is a mock implementation of handler.AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, email, secret, displayName string) (model.Token, error) {
	args := m.Called(ctx, email, secret, displayName)
	return args.Get(0).(model.Token), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, secret string) (model.Token, error) {
	args := m.Called(ctx, email, secret)
	return args.Get(0).(model.Token), args.Error(1)
}

func (m *AuthService) RefreshToken(ctx context.Context, token string) (model.Token, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Token), args.Error(1)
}

// ProfileService is a mock implementation of handler.ProfileService.
type ProfileService struct {
	mock.Mock
}

func (m *ProfileService) GetProfile(ctx context.Context, token string) (model.Profile, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileService) UpdateProfile(ctx context.Context, token, displayName string) (model.Profile, error) {
	args := m.Called(ctx, token, displayName)
	return args.Get(0).(model.Profile), args.Error(1)
}

// CatalogService is a mock implementation of handler.CatalogService.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context, query model.ProductQuery) (model.ProductPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(model.ProductPage), args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// ProductStore is a mock implementation of model.ProductStore.
type ProductStore struct {
	mock.Mock
}

func (m *ProductStore) List(ctx context.Context, query model.ProductQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]model.Product), args.Get(1).(int64), args.Error(2)
}

func (m *ProductStore) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}
