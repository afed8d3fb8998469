// internal/interfaces/http/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/domain/review"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(db *mongo.Database) *ReviewHandler {
	return &ReviewHandler{
		reviewService: review.NewService(db),
	}
}

// ListReviews handles GET /api/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// AddReview handles POST /api/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req review.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "productId, email, review and stars are required.",
		})
		return
	}

	if err := h.reviewService.Add(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your review added",
	})
}
