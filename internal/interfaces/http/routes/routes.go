// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/interfaces/http/handlers"
	"github.com/your-org/discount-app-backend/internal/interfaces/http/middleware"
)

// route is one entry of the API surface. Whether a route requires a
// valid session is configuration (AUTH_PROTECTED_ROUTES), not wiring;
// by default every route is open.
type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

// SetupRoutes mounts the whole API surface on the given group
func SetupRoutes(rg *gin.RouterGroup, db *mongo.Database, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, redisClient, logger)
	reviewHandler := handlers.NewReviewHandler(db)

	table := []route{
		{"POST", "/signup", authHandler.Signup},
		{"POST", "/login", authHandler.Login},
		{"POST", "/google-auth", authHandler.GoogleAuth},
		{"GET", "/users/:email", userHandler.GetUser},
		{"PUT", "/users/:email", userHandler.UpdateUser},
		{"GET", "/products", productHandler.ListProducts},
		{"POST", "/cart", cartHandler.AddToCart},
		{"GET", "/cart/:email", cartHandler.GetCart},
		{"POST", "/payment", paymentHandler.CreatePayment},
		{"GET", "/payment/:email", paymentHandler.ListPayments},
		{"GET", "/reviews", reviewHandler.ListReviews},
		{"POST", "/reviews", reviewHandler.AddReview},
	}

	requireSession := middleware.RequireSession(cfg)

	for _, r := range table {
		handlerChain := []gin.HandlerFunc{r.handler}
		if cfg.RouteRequiresSession(r.method, rg.BasePath()+r.path) {
			handlerChain = []gin.HandlerFunc{requireSession, r.handler}
		}
		rg.Handle(r.method, r.path, handlerChain...)
	}
}
