package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/your-org/discount-app-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Discount App Backend"},
		JWT: config.JWTConfig{
			Secret:        "0123456789abcdef0123456789abcdef",
			SignupExpiry:  time.Hour,
			SessionExpiry: 5 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 10},
	}
}

func TestSignupTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateSignupToken("alice@example.com")
	if err != nil {
		t.Fatalf("GenerateSignupToken returned error: %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email claim mismatch: got %s", claims.Email)
	}
	if claims.ID != "" || claims.UID != "" {
		t.Fatalf("signup token must carry only the email claim, got id=%q uid=%q", claims.ID, claims.UID)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > time.Hour || ttl < 55*time.Minute {
		t.Fatalf("signup token expiry out of range: %s", ttl)
	}
}

func TestSessionTokenCarriesIDAndEmail(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateSessionToken("64f0c5a2e1b2c3d4e5f60718", "bob@example.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.ID != "64f0c5a2e1b2c3d4e5f60718" {
		t.Fatalf("id claim mismatch: got %s", claims.ID)
	}
	if claims.Email != "bob@example.com" {
		t.Fatalf("email claim mismatch: got %s", claims.Email)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 5*time.Hour || ttl < 4*time.Hour+55*time.Minute {
		t.Fatalf("session token expiry out of range: %s", ttl)
	}
}

func TestFederatedTokenCarriesUID(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateFederatedToken("google-uid-1", "carol@example.com")
	if err != nil {
		t.Fatalf("GenerateFederatedToken returned error: %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UID != "google-uid-1" || claims.Email != "carol@example.com" {
		t.Fatalf("claims mismatch: uid=%q email=%q", claims.UID, claims.Email)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateSignupToken("dave@example.com")
	if err != nil {
		t.Fatalf("GenerateSignupToken returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := mgr.ValidateToken(tampered); err == nil {
		t.Fatal("expected validation failure for tampered signature")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	otherMgr := NewJWTManager(other)

	token, err := mgr.GenerateSessionToken("id1", "eve@example.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	if _, err := otherMgr.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure under a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.SignupExpiry = -time.Minute
	mgr := NewJWTManager(cfg)

	token, err := mgr.GenerateSignupToken("frank@example.com")
	if err != nil {
		t.Fatalf("GenerateSignupToken returned error: %v", err)
	}

	if _, err := mgr.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure for expired token")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	if got := ExtractTokenFromHeader("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("bearer extraction mismatch: %q", got)
	}
	if got := ExtractTokenFromHeader("abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("bare token extraction mismatch: %q", got)
	}
	if got := ExtractTokenFromHeader(""); got != "" {
		t.Fatalf("empty header should yield empty token, got %q", got)
	}
}
