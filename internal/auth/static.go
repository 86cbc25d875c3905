package auth

import (
	"context"
	"fmt"
	"strings"
)

// StaticVerifier accepts a fixed set of tokens. It is meant for local
// development and tests.
type StaticVerifier map[string]string

// ParseStaticTokens parses a comma separated list of "token:subject" pairs.
func ParseStaticTokens(s string) (StaticVerifier, error) {
	v := StaticVerifier{}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		token, subject, ok := strings.Cut(pair, ":")
		token = strings.TrimSpace(token)
		subject = strings.TrimSpace(subject)
		if !ok || token == "" || subject == "" {
			return nil, fmt.Errorf("invalid static token %q, use token:subject", pair)
		}

		v[token] = subject
	}

	if len(v) == 0 {
		return nil, fmt.Errorf("no static tokens configured")
	}

	return v, nil
}

func (v StaticVerifier) Verify(_ context.Context, token string) (Token, error) {
	subject, ok := v[token]
	if !ok {
		return Token{}, ErrInvalidToken
	}

	return Token{Subject: subject}, nil
}
