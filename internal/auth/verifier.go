// Package auth verifies bearer tokens and restricts access to user data
// to the user the token was issued for.
package auth

import (
	"context"
	"errors"
)

var (
	ErrHeaderMissing = errors.New("authorization header missing")
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrForbidden     = errors.New("unauthorized access to user data")
)

// Token is the verified identity of a caller.
type Token struct {
	// Subject is the unique ID of the user at the identity provider.
	Subject string
}

// Verifier verifies raw bearer tokens.
type Verifier interface {
	Verify(ctx context.Context, token string) (Token, error)
}
