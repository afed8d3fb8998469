// internal/interfaces/http/handlers/payment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/domain/checkout"
	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

// PaymentHandler handles checkout endpoints
type PaymentHandler struct {
	checkoutService *checkout.Service
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(db *mongo.Database, redisClient *redis.Client, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{
		checkoutService: checkout.NewService(db, redisClient, logger),
	}
}

// CreatePayment handles POST /api/payment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req checkout.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "email is required.",
		})
		return
	}

	orderID, err := h.checkoutService.Pay(c.Request.Context(), &req)
	if err != nil {
		// The payment path intentionally surfaces the underlying error
		// alongside the public message.
		c.JSON(apperrors.Status(err), gin.H{
			"message": apperrors.PublicMessage(err),
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment successful",
		"orderId": orderID,
		"success": true,
	})
}

// ListPayments handles GET /api/payment/:email
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	email := c.Param("email")

	payments, err := h.checkoutService.ListPayments(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
