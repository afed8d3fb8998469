// internal/domain/product/service.go
package product

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

const productsCollection = "products"

// Service handles catalog reads. The catalog is read-only from this
// system's perspective; products are managed out of band.
type Service struct {
	products *mongo.Collection
}

// NewService creates a new product service
func NewService(db *mongo.Database) *Service {
	return &Service{
		products: db.Collection(productsCollection),
	}
}

// List returns every product document as stored, unfiltered and
// unpaged.
func (s *Service) List(ctx context.Context) ([]bson.M, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	products := []bson.M{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return products, nil
}
