// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

// respondError maps a classified service error to its status code and
// public one-line message. Internal detail never reaches the client.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{
		"message": apperrors.PublicMessage(err),
	})
}
