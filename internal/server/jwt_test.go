package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandroarrudaa/db-deumatch/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          secret,
		ExpirationHours: 24,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService("test-secret-for-tokens")
	recruiterID := uuid.New()

	token, err := svc.GenerateToken(recruiterID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, recruiterID, claims.RecruiterID)
	assert.Equal(t, recruiterID, claims.GetRecruiterID())
}

func TestJWTService_ValidateToken_Empty(t *testing.T) {
	svc := testJWTService("test-secret-for-tokens")

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := testJWTService("test-secret-for-tokens")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService("secret-one").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = testJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := testJWTService("test-secret-for-tokens")

	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		RecruiterID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-for-tokens"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := testJWTService("test-secret-for-tokens")

	claims := &Claims{RecruiterID: uuid.New()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := testJWTService("test-secret-for-tokens")
	recruiterID := uuid.New()

	token, err := svc.GenerateToken(recruiterID)
	require.NoError(t, err)

	validator := svc.AsTokenValidator()
	getter, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, recruiterID, getter.GetRecruiterID())

	_, err = validator.ValidateToken("garbage")
	assert.Error(t, err)
}
