package libs

import (
	"errors"
	"time"

	"ansh-apparels/models"

	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenTTL = 7 * 24 * time.Hour

var ErrMissingSigningSecret = errors.New("missing environment variable: JWT_SECRET")

type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 access tokens. The secret is only required once a
// token is actually issued or parsed.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: AccessTokenTTL}
}

func (t *TokenIssuer) Issue(user models.PublicUser) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrMissingSigningSecret
	}

	now := time.Now()
	claims := TokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Parse(tokenString string) (*TokenClaims, error) {
	if len(t.secret) == 0 {
		return nil, ErrMissingSigningSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
