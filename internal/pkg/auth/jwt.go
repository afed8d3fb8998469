// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/your-org/discount-app-backend/internal/config"
)

// Claims represents the session token claims. ID is set for password
// logins, UID for federated logins, Email always.
type Claims struct {
	ID    string `json:"id,omitempty"`
	UID   string `json:"uid,omitempty"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager handles session token operations
type JWTManager struct {
	config *config.Config
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		config: cfg,
	}
}

// GenerateSignupToken issues the short-lived token returned on signup,
// keyed on email only.
func (j *JWTManager) GenerateSignupToken(email string) (string, error) {
	return j.sign(&Claims{Email: email}, j.config.JWT.SignupExpiry)
}

// GenerateSessionToken issues a login session token keyed on the user's
// id and email.
func (j *JWTManager) GenerateSessionToken(userID, email string) (string, error) {
	return j.sign(&Claims{ID: userID, Email: email}, j.config.JWT.SessionExpiry)
}

// GenerateFederatedToken issues a session token for a federated login,
// keyed on the external uid and email.
func (j *JWTManager) GenerateFederatedToken(uid, email string) (string, error) {
	return j.sign(&Claims{UID: uid, Email: email}, j.config.JWT.SessionExpiry)
}

func (j *JWTManager) sign(claims *Claims, expiry time.Duration) (string, error) {
	now := time.Now().UTC()

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    j.config.App.Name,
		Subject:   claims.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.JWT.Secret))
}

// ValidateToken validates and parses a session token
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts a token from an Authorization header.
// Both "Bearer <token>" and a bare token are accepted.
func ExtractTokenFromHeader(authHeader string) string {
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return authHeader
}
