// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/pkg/auth"
)

// RequireSession gates a route on a valid session token. Routes opt in
// through configuration; nothing is hardwired.
func RequireSession(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Access Denied! No token provided.",
			})
			c.Abort()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid Token",
			})
			c.Abort()
			return
		}

		c.Set("user_email", claims.Email)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// GetUserEmailFromContext extracts the session email from gin context
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetClaimsFromContext extracts the full token claims from gin context
func GetClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	claims, exists := c.Get("token_claims")
	if !exists {
		return nil, false
	}
	return claims.(*auth.Claims), true
}
