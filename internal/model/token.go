package model

import "time"

// Token is a signed, self-contained bearer credential. It is never persisted;
// validity is re-derivable from the value alone.
type Token struct {
	Value     string    `json:"token"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenIssuer signs and verifies identity tokens. Validate collapses every
// failure into ErrInvalidToken toward the caller; the internal reason is a
// diagnostics concern of the implementation only.
type TokenIssuer interface {
	Issue(subject string) (Token, error)
	Validate(token string) (subject string, err error)
	Refresh(token string) (Token, error)
}
