package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// GoogleVerifier verifies Google signed OpenID Connect ID tokens.
type GoogleVerifier struct {
	validator *idtoken.Validator
	audience  string
}

// NewGoogleVerifier returns a verifier that accepts ID tokens issued for
// the audience.
func NewGoogleVerifier(ctx context.Context, audience string, opts ...option.ClientOption) (*GoogleVerifier, error) {
	if audience == "" {
		return nil, errors.New("the audience for ID token verification must be set")
	}

	validator, err := idtoken.NewValidator(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create ID token validator: %w", err)
	}

	return &GoogleVerifier{
		validator: validator,
		audience:  audience,
	}, nil
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (Token, error) {
	payload, err := v.validator.Validate(ctx, token, v.audience)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if payload.Subject == "" {
		return Token{}, ErrInvalidToken
	}

	return Token{Subject: payload.Subject}, nil
}
