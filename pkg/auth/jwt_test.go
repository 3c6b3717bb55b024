package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)

	token, err := svc.Generate(42, "panel@example.com", "panel")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "panel@example.com", claims.Email)
	assert.Equal(t, "panel", claims.Role)
}

func TestTokenExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)

	token, err := svc.Generate(1, "a@b.com", "admin")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, 24*time.Hour, ttl, float64(time.Minute))
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Generate(1, "a@b.com", "recruiter")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(raw)
		assert.Error(t, err, "token %q should be rejected", raw)
	}
}

func TestNonHMACAlgorithmRejected(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	// alg=none tokens must never verify, even with the right claims shape
	claims := Claims{UserID: 1, Email: "a@b.com", Role: "admin"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	assert.Error(t, err)
}
