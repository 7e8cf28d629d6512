package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateJWT("user-123", "tester", "test@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, len(token) > 50, "JWT should be reasonably long")
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have 3 parts")
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("user-123", "tester", "test@example.com")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET not set")
}

func TestValidateJWT_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateJWT("user-123", "tester", "test@example.com")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)

	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "tester", claims.Username)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestValidateJWT_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	// create an expired token
	claims := Claims{
		UserID:   "user-123",
		Username: "tester",
		Email:    "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)), // expired 1 hour ago
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret-key-for-testing"))
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString)

	assert.Error(t, err, "expired token should be rejected")
}

func TestValidateJWT_TamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	token, err := GenerateJWT("user-123", "tester", "test@example.com")
	require.NoError(t, err)

	// tamper with the token by changing a character
	tamperedToken := token[:len(token)-5] + "XXXXX"

	_, err = ValidateJWT(tamperedToken)
	assert.Error(t, err, "tampered token should be rejected")
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")
	token, err := GenerateJWT("user-123", "tester", "test@example.com")
	require.NoError(t, err)

	// change the secret
	t.Setenv("JWT_SECRET", "different-secret-key")

	_, err = ValidateJWT(token)

	assert.Error(t, err, "token signed with different secret should be rejected")
}

func TestValidateJWT_AlgorithmConfusionAttack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	claims := Claims{
		UserID:   "attacker",
		Username: "attacker",
		Email:    "attacker@evil.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// attempt to use different signing method
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType) //nolint:errcheck // test code

	_, err := ValidateJWT(tokenString)
	assert.Error(t, err, "token with 'none' algorithm should be rejected")
}

func TestValidateJWT_MalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing")

	malformedTokens := []string{
		"",
		"not.a.jwt",
		"only.two",
		"too.many.parts.in.this.token",
		"<script>alert('xss')</script>",
	}

	for _, token := range malformedTokens {
		_, err := ValidateJWT(token)
		assert.Error(t, err, "malformed token '%s' should be rejected", token)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not-a-hash", "anything"))
}
