// internal/domain/review/entity.go
package review

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is an append-only product review. A user may submit any number
// of reviews for the same product.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID string             `bson:"productId" json:"productId"`
	Email     string             `bson:"email" json:"email"`
	Review    string             `bson:"review" json:"review"`
	Stars     int                `bson:"stars" json:"stars"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
