// internal/domain/checkout/entity.go
package checkout

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus is always recorded as completed; there is no gateway
// round trip in this system.
const PaymentStatusCompleted = "completed"

// Payment represents a recorded order. Immutable once inserted; the
// orderId carries a unique index.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID     string             `bson:"orderId" json:"orderId"`
	Email       string             `bson:"email" json:"email"`
	Amount      float64            `bson:"amount" json:"amount"`
	Method      string             `bson:"method" json:"method"`
	ProductIDs  []string           `bson:"productIds" json:"productIds"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	CompanyName string             `bson:"companyName" json:"companyName"`
	Division    string             `bson:"division" json:"division"`
	Number      string             `bson:"number" json:"number"`
	Address     string             `bson:"address" json:"address"`
}
