package config

import (
	"testing"
	"time"
)

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "5000"},
		Mongo:  MongoConfig{URI: "mongodb://localhost:27017", Database: "Discount_App"},
		Redis:  RedisConfig{Host: "localhost"},
		JWT:    JWTConfig{Secret: "tooshort"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for short JWT secret")
	}
}

func TestValidateRequiresMongoURI(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "5000"},
		Mongo:  MongoConfig{Database: "Discount_App"},
		Redis:  RedisConfig{Host: "localhost"},
		JWT:    JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing MONGODB_URI")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("default port mismatch: got %s", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "Discount_App" {
		t.Fatalf("default database mismatch: got %s", cfg.Mongo.Database)
	}
	if cfg.JWT.SignupExpiry != time.Hour {
		t.Fatalf("default signup expiry mismatch: got %s", cfg.JWT.SignupExpiry)
	}
	if cfg.JWT.SessionExpiry != 5*time.Hour {
		t.Fatalf("default session expiry mismatch: got %s", cfg.JWT.SessionExpiry)
	}
	if cfg.Security.BcryptCost != 10 {
		t.Fatalf("default bcrypt cost mismatch: got %d", cfg.Security.BcryptCost)
	}
}

func TestRouteRequiresSession(t *testing.T) {
	cfg := &Config{
		Security: SecurityConfig{
			ProtectedRoutes: []string{"GET /api/users/:email", " PUT /api/users/:email "},
		},
	}

	if !cfg.RouteRequiresSession("GET", "/api/users/:email") {
		t.Fatal("expected GET /api/users/:email to require a session")
	}
	if !cfg.RouteRequiresSession("PUT", "/api/users/:email") {
		t.Fatal("expected whitespace-padded entry to match")
	}
	if cfg.RouteRequiresSession("POST", "/api/login") {
		t.Fatal("login must not require a session")
	}
}
