package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/auth/credentials/idtoken"
)

// FirebaseCertsURL serves the public keys that sign Firebase ID tokens.
const FirebaseCertsURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

const (
	firebaseIssuer = "https://securetoken.google.com/"

	// Tolerated difference between the clocks of the token issuer and this server
	clockSkew = 5 * time.Minute
)

// FirebaseOptions configures a FirebaseVerifier.
type FirebaseOptions struct {
	// Client fetches the signing keys. Optional.
	Client *http.Client

	// CertsURL serves the signing keys as JWK set. Defaults to FirebaseCertsURL.
	CertsURL string
}

// FirebaseVerifier verifies ID tokens issued by Firebase Authentication
// for a Firebase project.
type FirebaseVerifier struct {
	validator *idtoken.Validator
	projectID string
	now       func() time.Time
}

// NewFirebaseVerifier returns a verifier for ID tokens of the Firebase project.
func NewFirebaseVerifier(projectID string, opts *FirebaseOptions) (*FirebaseVerifier, error) {
	if projectID == "" {
		return nil, errors.New("the Firebase project ID must be set")
	}

	if opts == nil {
		opts = &FirebaseOptions{}
	}

	certsURL := opts.CertsURL
	if certsURL == "" {
		certsURL = FirebaseCertsURL
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	validator, err := idtoken.NewValidator(&idtoken.ValidatorOptions{
		Client:        client,
		RS256CertsURL: certsURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Firebase ID token validator: %w", err)
	}

	return &FirebaseVerifier{
		validator: validator,
		projectID: projectID,
		now:       time.Now,
	}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Token, error) {
	// Firebase only signs with RS256. Other algorithms would be checked
	// against keys that are not Firebase's.
	alg, err := algorithm(token)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if alg != "RS256" {
		return Token{}, fmt.Errorf("%w: unexpected algorithm %q", ErrInvalidToken, alg)
	}

	payload, err := v.validator.Validate(ctx, token, v.projectID)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if payload.Issuer != firebaseIssuer+v.projectID {
		return Token{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, payload.Issuer)
	}

	if payload.Subject == "" || len(payload.Subject) > 128 {
		return Token{}, fmt.Errorf("%w: subject must be between 1 and 128 characters", ErrInvalidToken)
	}

	latest := v.now().Add(clockSkew).Unix()
	if payload.IssuedAt > latest {
		return Token{}, fmt.Errorf("%w: issued in the future", ErrInvalidToken)
	}

	if authTime, ok := payload.Claims["auth_time"].(float64); ok && int64(authTime) > latest {
		return Token{}, fmt.Errorf("%w: authenticated in the future", ErrInvalidToken)
	}

	return Token{Subject: payload.Subject}, nil
}

// algorithm returns the signing algorithm from the header of a JWT.
func algorithm(token string) (string, error) {
	header, _, ok := strings.Cut(token, ".")
	if !ok {
		return "", errors.New("malformed token")
	}

	b, err := base64.RawURLEncoding.DecodeString(header)
	if err != nil {
		return "", fmt.Errorf("malformed token header: %w", err)
	}

	var h struct {
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(b, &h); err != nil {
		return "", fmt.Errorf("malformed token header: %w", err)
	}

	return h.Alg, nil
}
