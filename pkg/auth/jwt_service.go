package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// DefaultIssuer names the tokens this API issues when config sets none.
const DefaultIssuer = "portfolio-api"

// JWTService issues and checks the owner's admin tokens. Tokens are HS256 and
// carry the configured issuer; anything else is rejected.
type JWTService struct {
	secretKey     []byte
	tokenLifespan time.Duration
	issuer        string
	parser        *jwt.Parser
}

type CustomClaims struct {
	OwnerID uuid.UUID `json:"owner_id"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, tokenLifespan time.Duration, issuer string) *JWTService {
	if issuer == "" {
		issuer = DefaultIssuer
	}
	return &JWTService{
		secretKey:     []byte(secretKey),
		tokenLifespan: tokenLifespan,
		issuer:        issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *JWTService) GenerateToken(ownerID uuid.UUID) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   ownerID.String(),
			Issuer:    s.issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken returns an Unauthorized AppError for any token that is not
// ours: wrong secret, algorithm or issuer, expired, or missing an owner.
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid token", err)
	}
	if !token.Valid || claims.OwnerID == uuid.Nil {
		return nil, apperror.NewUnauthorized("token carries no owner", nil)
	}
	return claims, nil
}
