// internal/interfaces/http/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/domain/user"
)

// UserHandler handles profile endpoints
type UserHandler struct {
	userService *user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *mongo.Database, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: user.NewService(db, cfg),
	}
}

// GetUser handles GET /api/users/:email
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.userService.GetProfile(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateUser handles PUT /api/users/:email
func (h *UserHandler) UpdateUser(c *gin.Context) {
	email := c.Param("email")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), email, updates); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User information updated successfully",
	})
}
