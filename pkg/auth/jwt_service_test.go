package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, "portfolio-test")
	ownerID := uuid.New()

	token, err := svc.GenerateToken(ownerID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.OwnerID)
	assert.Equal(t, "portfolio-test", claims.Issuer)
}

func TestJWTService_DefaultIssuer(t *testing.T) {
	token, err := NewJWTService("secret", time.Hour, "").GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := NewJWTService("secret", time.Hour, DefaultIssuer).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, "portfolio-api")

	signed := func(method jwt.SigningMethod, claims CustomClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}
	valid := func(issuer string) CustomClaims {
		return CustomClaims{
			OwnerID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	foreignSecret, err := NewJWTService("other", time.Hour, "portfolio-api").GenerateToken(uuid.New())
	require.NoError(t, err)
	expired, err := NewJWTService("secret", -time.Minute, "portfolio-api").GenerateToken(uuid.New())
	require.NoError(t, err)
	noOwner := valid("portfolio-api")
	noOwner.OwnerID = uuid.Nil
	noExpiry := valid("portfolio-api")
	noExpiry.ExpiresAt = nil

	for name, token := range map[string]string{
		"foreign secret": foreignSecret,
		"expired":        expired,
		"foreign issuer": signed(jwt.SigningMethodHS256, valid("someone-else")),
		"other hmac alg": signed(jwt.SigningMethodHS512, valid("portfolio-api")),
		"no owner":       signed(jwt.SigningMethodHS256, noOwner),
		"no expiry":      signed(jwt.SigningMethodHS256, noExpiry),
		"garbage":        "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			require.Error(t, err)
			assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}
