// internal/domain/user/service.go
package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/pkg/apperrors"
	"github.com/your-org/discount-app-backend/internal/pkg/auth"
)

const usersCollection = "users"

// Service handles account business logic
type Service struct {
	users           *mongo.Collection
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *mongo.Database, cfg *config.Config) *Service {
	return &Service{
		users:           db.Collection(usersCollection),
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// SignupRequest represents signup data
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FederatedLoginRequest represents a federated (external identity) login
type FederatedLoginRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// Signup registers a new account and returns a one-hour token keyed on
// the email.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (string, error) {
	err := s.users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		return "", apperrors.New(apperrors.KindConflict, "User already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal server error", err)
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal server error", err)
	}

	_, err = s.users.InsertOne(ctx, User{
		Email:    req.Email,
		Password: hashedPassword,
	})
	if err != nil {
		// The unique email index closes the check-then-insert window.
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.New(apperrors.KindConflict, "User already exists")
		}
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal server error", err)
	}

	token, err := s.jwtManager.GenerateSignupToken(req.Email)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal server error", err)
	}

	return token, nil
}

// Login authenticates an account and returns a five-hour session token
// keyed on the account id and email.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, error) {
	if req.Email == "" {
		return "", apperrors.New(apperrors.KindBadRequest, "Email and password are required.")
	}

	var u User
	err := s.users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", apperrors.New(apperrors.KindNotFound, "User not found.")
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal server error", err)
	}

	// Federated accounts have no password and cannot log in here.
	if u.Password == "" {
		return "", apperrors.New(apperrors.KindUnauthorized, "Invalid email or password")
	}
	if err := s.passwordManager.VerifyPassword(req.Password, u.Password); err != nil {
		return "", apperrors.New(apperrors.KindUnauthorized, "Invalid email or password")
	}

	token, err := s.jwtManager.GenerateSessionToken(u.ID.Hex(), u.Email)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal server error", err)
	}

	return token, nil
}

// FederatedLogin finds the account by email, provisioning one without a
// password on first sight, and returns a five-hour session token keyed
// on the external uid and email. Repeat calls never create duplicates.
func (s *Service) FederatedLogin(ctx context.Context, req *FederatedLoginRequest) (string, error) {
	upsert := func() (User, error) {
		var u User
		err := s.users.FindOneAndUpdate(ctx,
			bson.M{"email": req.Email},
			bson.M{"$setOnInsert": bson.M{
				"uid":         req.UID,
				"displayName": req.DisplayName,
				"photoURL":    req.PhotoURL,
			}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&u)
		return u, err
	}

	u, err := upsert()
	if mongo.IsDuplicateKeyError(err) {
		// Concurrent first logins for the same email race to insert; the
		// unique index fails one, and on retry it finds the winner's row.
		u, err = upsert()
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	token, err := s.jwtManager.GenerateFederatedToken(u.UID, u.Email)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return token, nil
}

// GetProfile returns the account for an email with the password excluded
func (s *Service) GetProfile(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.users.FindOne(ctx,
		bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"password": 0}),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.New(apperrors.KindNotFound, "User not found")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return &u, nil
}

// UpdateProfile applies a shallow field merge to the account. A password
// among the updates is re-hashed before persisting.
func (s *Service) UpdateProfile(ctx context.Context, email string, updates map[string]interface{}) error {
	err := s.users.FindOne(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.New(apperrors.KindNotFound, "User not found")
	}
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	delete(updates, "_id")
	if password, ok := updates["password"].(string); ok && password != "" {
		hashed, err := s.passwordManager.HashPassword(password)
		if err != nil {
			return apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
		}
		updates["password"] = hashed
	}

	if _, err := s.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": updates}); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "Internal Server Error", err)
	}

	return nil
}
