package service

import (
	"fmt"
	"time"

	"ownly-protocol/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSessionService implements ports.SessionService using HS256 JWT. A
// session is issued once a wallet address is proven (connect) and carries
// only that address.
type JWTSessionService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTSessionService creates a new JWT session service.
func NewJWTSessionService(secret string, expiry time.Duration, issuer string) *JWTSessionService {
	return &JWTSessionService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Issue creates a signed session token for the given address.
func (s *JWTSessionService) Issue(address domain.Address) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub": address.String(),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses a session token and returns the wallet address it carries.
func (s *JWTSessionService) Validate(tokenString string) (domain.Address, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", fmt.Errorf("missing subject claim")
	}

	address, err := domain.ParseAddress(sub)
	if err != nil {
		return "", fmt.Errorf("invalid address in token: %w", err)
	}

	return address, nil
}
