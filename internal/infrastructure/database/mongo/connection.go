// internal/infrastructure/database/mongo/connection.go
package mongo

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/your-org/discount-app-backend/internal/config"
)

// Collection names used by the application.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	CartCollection     = "userCart"
	PaymentsCollection = "payments"
	ReviewsCollection  = "reviews"
)

// Client wraps the MongoDB client and the application database handle.
// It is created once at startup and shared by every component.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection creates a new MongoDB connection and verifies it with a ping
func NewConnection(cfg *config.Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("✅ MongoDB connection established successfully")

	return &Client{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Health checks the MongoDB connection health
func (c *Client) Health(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Database returns the application database handle
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Users returns the users collection
func (c *Client) Users() *mongo.Collection {
	return c.db.Collection(UsersCollection)
}

// Products returns the products collection
func (c *Client) Products() *mongo.Collection {
	return c.db.Collection(ProductsCollection)
}

// Cart returns the userCart collection
func (c *Client) Cart() *mongo.Collection {
	return c.db.Collection(CartCollection)
}

// Payments returns the payments collection
func (c *Client) Payments() *mongo.Collection {
	return c.db.Collection(PaymentsCollection)
}

// Reviews returns the reviews collection
func (c *Client) Reviews() *mongo.Collection {
	return c.db.Collection(ReviewsCollection)
}

// EnsureIndexes creates the unique indexes the invariants depend on:
// one user per email, one cart row per (productId, userEmail), one
// payment per orderId.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = c.Cart().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productId", Value: 1}, {Key: "userEmail", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create cart compound index: %w", err)
	}

	_, err = c.Payments().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create payments orderId index: %w", err)
	}

	return nil
}
