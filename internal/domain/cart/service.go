// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

const (
	cartCollection     = "userCart"
	productsCollection = "products"
)

// Service handles cart business logic
type Service struct {
	cart     *mongo.Collection
	products *mongo.Collection
}

// NewService creates a new cart service
func NewService(db *mongo.Database) *Service {
	return &Service{
		cart:     db.Collection(cartCollection),
		products: db.Collection(productsCollection),
	}
}

// AddToCartRequest represents add to cart data
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// AddToCart adds a line to the cart, merging quantities when the
// (productId, userEmail) pair already has one. The merge is a single
// atomic upsert-with-increment, so concurrent adds for the same pair
// never create duplicate rows.
func (s *Service) AddToCart(ctx context.Context, req *AddToCartRequest) (merged bool, err error) {
	productObjectID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return false, apperrors.New(apperrors.KindNotFound, "Product not found")
	}

	err = s.products.FindOne(ctx, bson.M{"_id": productObjectID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, apperrors.New(apperrors.KindNotFound, "Product not found")
	}
	if err != nil {
		return false, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	filter := bson.M{"productId": req.ProductID, "userEmail": req.UserEmail}
	update := bson.M{"$inc": bson.M{"quantity": req.Quantity}}

	var item CartItem
	err = s.cart.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&item)
	if mongo.IsDuplicateKeyError(err) {
		// Two concurrent upserts for a pair not yet in the collection can
		// both try to insert; the unique index fails one. Retrying turns
		// that loser into a plain increment.
		err = s.cart.FindOneAndUpdate(ctx, filter, update,
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&item)
	}
	if err != nil {
		return false, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return item.Quantity != req.Quantity, nil
}

// GetCart returns every cart line for a user. An empty cart is reported
// as not found, matching the route contract.
func (s *Service) GetCart(ctx context.Context, email string) ([]CartItem, error) {
	cursor, err := s.cart.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	items := []CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	if len(items) == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "No items found in the cart")
	}

	return items, nil
}
