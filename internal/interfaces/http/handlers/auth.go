// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/domain/user"
	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

// AuthHandler handles signup and login endpoints
type AuthHandler struct {
	userService *user.Service
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *mongo.Database, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: user.NewService(db, cfg),
		config:      cfg,
	}
}

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and password are required.",
		})
		return
	}

	token, err := h.userService.Signup(c.Request.Context(), &req)
	if err != nil {
		// Duplicate email is pinned at 400 by the route contract.
		if apperrors.IsKind(err, apperrors.KindConflict) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": apperrors.PublicMessage(err),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   token,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and password are required.",
		})
		return
	}

	token, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// GoogleAuth handles POST /api/google-auth
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req user.FederatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email is required.",
		})
		return
	}

	token, err := h.userService.FederatedLogin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
