// README: Bearer-token verifier backed by the external identity provider's signed JWTs.
package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"foodbridge/internal/types"
)

// TokenVerifier verifies a raw bearer token and returns the principal it
// asserts. The identity provider is fully trusted; the core never
// re-validates credentials beyond the token signature.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*types.Principal, error)
}

var ErrInvalidToken = errors.New("invalid token")

// jwtVerifier is the production implementation for HS256 tokens issued by
// the identity service.
type jwtVerifier struct {
	key []byte
}

func NewJWTVerifier(signingKey string) TokenVerifier {
	return &jwtVerifier{key: []byte(signingKey)}
}

type principalClaims struct {
	Role   string `json:"role"`
	Status string `json:"status"`
	jwt.RegisteredClaims
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (*types.Principal, error) {
	var claims principalClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &types.Principal{
		ID:     types.ID(claims.Subject),
		Role:   types.Role(claims.Role),
		Status: claims.Status,
	}, nil
}
