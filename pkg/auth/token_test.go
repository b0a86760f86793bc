package auth

import (
	"testing"
	"time"

	"github.com/example/quickcart/pkg/apperr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", 0)
	assert.Equal(t, DefaultTokenTTL, issuer.TTL())

	for _, email := range []string{"a@x.com", "seller+shop@example.org", "ADMIN@QUICKCART.IO"} {
		token, err := issuer.Issue(email)
		require.NoError(t, err)

		got, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, email, got)
	}
}

func TestIssueRequiresEmail(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).Issue("  ")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestIssueRejectsPaddedEmail(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	for _, email := range []string{" a@x.com", "a@x.com ", "\ta@x.com\n"} {
		_, err := issuer.Issue(email)
		require.Error(t, err, "%q", email)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	}
}

func TestVerifyMissing(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	email, err := issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, email)
}

func TestVerifyWrongKey(t *testing.T) {
	token, err := NewIssuer("secret", time.Hour).Issue("a@x.com")
	require.NoError(t, err)

	email, err := NewIssuer("other-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, email)
}

func TestVerifyTampered(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	token, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsEmptyEmailClaim(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
