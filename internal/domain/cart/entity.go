// internal/domain/cart/entity.go
package cart

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem represents one cart line. A unique compound index on
// (productId, userEmail) guarantees at most one row per pair.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID string             `bson:"productId" json:"productId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
