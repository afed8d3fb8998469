// internal/domain/review/service.go
package review

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
)

const reviewsCollection = "reviews"

// Service handles review business logic
type Service struct {
	reviews *mongo.Collection
}

// NewService creates a new review service
func NewService(db *mongo.Database) *Service {
	return &Service{
		reviews: db.Collection(reviewsCollection),
	}
}

// AddReviewRequest represents review data
type AddReviewRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Review    string `json:"review" binding:"required"`
	Stars     int    `json:"stars" binding:"required"`
}

// List returns every review across all products
func (s *Service) List(ctx context.Context) ([]Review, error) {
	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return reviews, nil
}

// Add appends a review unconditionally
func (s *Service) Add(ctx context.Context, req *AddReviewRequest) error {
	_, err := s.reviews.InsertOne(ctx, Review{
		ProductID: req.ProductID,
		Email:     req.Email,
		Review:    req.Review,
		Stars:     req.Stars,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return nil
}
