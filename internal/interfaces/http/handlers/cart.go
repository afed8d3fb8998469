// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *mongo.Database) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db),
	}
}

// AddToCart handles POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "productId, userEmail and quantity are required.",
		})
		return
	}

	merged, err := h.cartService.AddToCart(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if merged {
		c.JSON(http.StatusOK, gin.H{"message": "Your Product quantity Update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Yah, Your Product has added"})
}

// GetCart handles GET /api/cart/:email
func (h *CartHandler) GetCart(c *gin.Context) {
	email := c.Param("email")

	items, err := h.cartService.GetCart(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
