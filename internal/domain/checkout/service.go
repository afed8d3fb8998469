// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

const (
	paymentsCollection = "payments"
	cartCollection     = "userCart"

	// pendingClearPrefix keys the saga markers in Redis. A marker exists
	// from just before the cart clear until the clear succeeds; the
	// reconciler retries whatever is left over.
	pendingClearPrefix = "checkout:pending_clear:"
	pendingClearTTL    = 24 * time.Hour
)

// Service handles checkout business logic
type Service struct {
	payments *mongo.Collection
	cart     *mongo.Collection
	redis    *redis.Client
	logger   *logrus.Logger
}

// NewService creates a new checkout service
func NewService(db *mongo.Database, redisClient *redis.Client, logger *logrus.Logger) *Service {
	return &Service{
		payments: db.Collection(paymentsCollection),
		cart:     db.Collection(cartCollection),
		redis:    redisClient,
		logger:   logger,
	}
}

// PayRequest represents payment data
type PayRequest struct {
	Email       string   `json:"email" binding:"required"`
	Amount      float64  `json:"amount"`
	Method      string   `json:"method"`
	ProductIDs  []string `json:"productIds"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	CompanyName string   `json:"companyName"`
	Division    string   `json:"division"`
	Number      string   `json:"number"`
	Address     string   `json:"address"`
}

// Pay records a payment with a fresh order id and then clears the
// user's cart. The two writes are a saga keyed by the order id: the
// payment insert is the commit point, and the cart clear is retried by
// the reconciler if it does not land.
func (s *Service) Pay(ctx context.Context, req *PayRequest) (string, error) {
	orderID := GenerateOrderID()

	err := s.payments.FindOne(ctx, bson.M{"orderId": orderID}).Err()
	if err == nil {
		return "", apperrors.New(apperrors.KindConflict, "Order ID conflict detected")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", apperrors.Wrap(apperrors.KindInternal, "Payment processing failed", err)
	}

	// The marker is written before the commit-point insert, so every
	// payment that lands has a retryable cart clear from the moment it
	// exists. A payment must not be recorded without one.
	if err := s.redis.Set(ctx, pendingClearPrefix+orderID, req.Email, pendingClearTTL).Err(); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Payment processing failed", err)
	}

	payment := Payment{
		OrderID:     orderID,
		Email:       req.Email,
		Amount:      req.Amount,
		Method:      req.Method,
		ProductIDs:  req.ProductIDs,
		Status:      PaymentStatusCompleted,
		CreatedAt:   time.Now().UTC(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Division:    req.Division,
		Number:      req.Number,
		Address:     req.Address,
	}

	if _, err := s.payments.InsertOne(ctx, payment); err != nil {
		// The payment never landed, so the marker is an orphan. Drop it
		// here if possible; the reconciler drops it otherwise.
		s.redis.Del(ctx, pendingClearPrefix+orderID)
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.New(apperrors.KindConflict, "Order ID conflict detected")
		}
		return "", apperrors.Wrap(apperrors.KindInternal, "Payment processing failed", err)
	}

	// Payment is recorded; from here the call succeeds even if the cart
	// clear fails, because the marker makes the clear retryable.
	if err := s.clearCart(ctx, orderID, req.Email); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"order_id": orderID,
			"email":    req.Email,
		}).Warn("cart clear failed, leaving it to the reconciler")
	}

	return orderID, nil
}

// clearCart deletes every cart line for the email and drops the saga
// marker. Deleting is idempotent, so repeated attempts are safe.
func (s *Service) clearCart(ctx context.Context, orderID, email string) error {
	if _, err := s.cart.DeleteMany(ctx, bson.M{"userEmail": email}); err != nil {
		return err
	}

	if err := s.redis.Del(ctx, pendingClearPrefix+orderID).Err(); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).
			Warn("failed to delete pending cart-clear marker")
	}

	return nil
}

// ListPayments returns every payment recorded for an email
func (s *Service) ListPayments(ctx context.Context, email string) ([]Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	payments := []Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	if len(payments) == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "No items found in the cart")
	}

	return payments, nil
}
