package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

const minSecretLength = 8

// Auth orchestrates registration, login, token refresh and profile state.
// It holds no per-session state: every call is independently verifiable from
// the presented token plus one record lookup.
type Auth struct {
	users  model.UserStore
	hasher model.SecretHasher
	tokens model.TokenIssuer
	events model.EventEmitter
	logger *logger.Logger
}

// NewAuth creates the authentication service.
func NewAuth(
	users model.UserStore,
	hasher model.SecretHasher,
	tokens model.TokenIssuer,
	events model.EventEmitter,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		events: events,
		logger: logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email, secret, displayName string) error {
	if email == "" {
		return model.NewValidationError("email", "must not be blank")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.NewValidationError("email", "must be a valid address")
	}
	if len(secret) < minSecretLength {
		return model.NewValidationError("secret", fmt.Sprintf("must be at least %d characters", minSecretLength))
	}
	if strings.TrimSpace(displayName) == "" {
		return model.NewValidationError("name", "must not be blank")
	}
	return nil
}

// Register creates a new identity and returns a token for it. The secret is
// hashed before any store interaction; plaintext never crosses the store
// boundary. Uniqueness is enforced by the store's atomic insert, not by a
// separate existence check.
func (a *Auth) Register(ctx context.Context, email, secret, displayName string) (model.Token, error) {
	email = normalizeEmail(email)

	a.logger.Debug("auth service: registering user", "email", email)

	if err := validateRegistration(email, secret, displayName); err != nil {
		return model.Token{}, err
	}

	secretHash, err := a.hasher.Hash(secret)
	if err != nil {
		a.logger.Error("auth service: failed to hash secret", "email", email, "error", err.Error())
		return model.Token{}, fmt.Errorf("failed to hash secret: %w", err)
	}

	now := time.Now()
	user, err := a.users.Create(ctx, model.User{
		ID:          uuid.New(),
		Email:       email,
		SecretHash:  secretHash,
		DisplayName: strings.TrimSpace(displayName),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateIdentity) {
			a.logger.Info("auth service: email already registered", "email", email)
			return model.Token{}, model.ErrDuplicateIdentity
		}
		a.logger.Error("auth service: failed to create user", "email", email, "error", err.Error())
		return model.Token{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.events.Emit(model.IdentityEvent{
		Type:      model.EventUserCreated,
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: time.Now(),
	})

	a.logger.Info("auth service: user registered", "email", user.Email, "user_id", user.ID)

	return a.tokens.Issue(user.Email)
}

// Login verifies the presented secret and issues a fresh token. Unknown email
// and wrong secret remain distinct failure kinds; collapsing them for
// enumeration protection is a transport policy decision.
func (a *Auth) Login(ctx context.Context, email, secret string) (model.Token, error) {
	email = normalizeEmail(email)

	a.logger.Debug("auth service: login attempt", "email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Token{}, model.ErrNotFound
		}
		return model.Token{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Verify(secret, user.SecretHash)
	if err != nil {
		a.logger.Error("auth service: secret verification failed", "email", email, "error", err.Error())
		return model.Token{}, fmt.Errorf("failed to verify secret: %w", err)
	}
	if !ok {
		a.logger.Info("auth service: invalid credential", "email", email)
		return model.Token{}, model.ErrInvalidCredential
	}

	return a.tokens.Issue(user.Email)
}

// RefreshToken exchanges a valid token for a fresh one. The subject must
// still resolve to a live user; a stale token for a deleted identity must not
// keep refreshing indefinitely.
func (a *Auth) RefreshToken(ctx context.Context, tokenString string) (model.Token, error) {
	user, err := a.resolveSubject(ctx, tokenString)
	if err != nil {
		return model.Token{}, err
	}

	return a.tokens.Issue(user.Email)
}

// GetProfile returns the profile projection for the token's subject.
func (a *Auth) GetProfile(ctx context.Context, tokenString string) (model.Profile, error) {
	user, err := a.resolveSubject(ctx, tokenString)
	if err != nil {
		return model.Profile{}, err
	}

	return model.ProfileOf(user), nil
}

// UpdateProfile changes the subject's display name and returns the updated
// projection.
func (a *Auth) UpdateProfile(ctx context.Context, tokenString, displayName string) (model.Profile, error) {
	user, err := a.resolveSubject(ctx, tokenString)
	if err != nil {
		return model.Profile{}, err
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return model.Profile{}, model.NewValidationError("name", "must not be blank")
	}

	updated, err := a.users.UpdateDisplayName(ctx, user.ID, displayName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrNotFound
		}
		a.logger.Error("auth service: failed to update display name", "user_id", user.ID, "error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to update display name: %w", err)
	}

	a.events.Emit(model.IdentityEvent{
		Type:          model.EventUserUpdated,
		UserID:        updated.ID,
		Email:         updated.Email,
		UpdatedFields: []string{"displayName"},
		Timestamp:     time.Now(),
	})

	a.logger.Info("auth service: profile updated", "user_id", updated.ID)

	return model.ProfileOf(updated), nil
}

// resolveSubject is the single validation sequence shared by every protected
// operation: validate the token, then resolve its subject to a live user.
func (a *Auth) resolveSubject(ctx context.Context, tokenString string) (model.User, error) {
	subject, err := a.tokens.Validate(tokenString)
	if err != nil {
		return model.User{}, model.ErrInvalidToken
	}

	user, err := a.users.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("auth service: token subject no longer exists", "subject", subject)
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user, nil
}
