package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alex-pricope/snackify/logging"
	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("authentication required")

// Verifier resolves bearer tokens to users. Tokens signed with the project
// secret are checked locally; anything else is asked of the provider.
type Verifier struct {
	secret   []byte
	provider Provider
}

func NewVerifier(jwtSecret string, provider Provider) *Verifier {
	return &Verifier{secret: []byte(jwtSecret), provider: provider}
}

func (v *Verifier) Verify(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	if len(v.secret) > 0 {
		user, err := v.verifyLocal(token)
		if err == nil {
			return user, nil
		}
		logging.Log.Debugf("AUTH: local token verification failed: %v", err)
	}
	if v.provider == nil {
		return nil, ErrUnauthorized
	}

	user, err := v.provider.GetUser(ctx, token)
	if err != nil {
		var pErr *ProviderError
		if errors.As(err, &pErr) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (v *Verifier) verifyLocal(token string) (*User, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("jwt invalid")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("jwt has no subject")
	}
	email, _ := claims["email"].(string)
	return &User{ID: sub, Email: email}, nil
}
