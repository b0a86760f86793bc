package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 365 * 24 * time.Hour

var (
	// ErrMissingToken means no credential was presented at all.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken covers malformed, expired and wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the session credential payload. Email is the only identity key.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a credential for email exactly as given. An empty or
// whitespace-padded email is a client error.
func (i *Issuer) Issue(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", apperr.InvalidInput("email is required")
	}
	if trimmed != email {
		return "", apperr.InvalidInput("email must not have leading or trailing whitespace")
	}

	now := i.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", apperr.Internal("failed to sign token", err)
	}
	return token, nil
}

// Verify returns the email claim of a valid credential. The error is
// ErrMissingToken or wraps ErrInvalidToken.
func (i *Issuer) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: empty email claim", ErrInvalidToken)
	}
	return claims.Email, nil
}
