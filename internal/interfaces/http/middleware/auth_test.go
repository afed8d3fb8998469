package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/discount-app-backend/internal/config"
	"github.com/your-org/discount-app-backend/internal/pkg/auth"
)

func sessionTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Discount App Backend"},
		JWT: config.JWTConfig{
			Secret:        "0123456789abcdef0123456789abcdef",
			SignupExpiry:  time.Hour,
			SessionExpiry: 5 * time.Hour,
		},
	}
}

func sessionTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireSession(cfg), func(c *gin.Context) {
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestRequireSessionMissingToken(t *testing.T) {
	r := sessionTestRouter(sessionTestConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d", w.Code)
	}
}

func TestRequireSessionInvalidToken(t *testing.T) {
	r := sessionTestRouter(sessionTestConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid token, got %d", w.Code)
	}
}

func TestRequireSessionValidToken(t *testing.T) {
	cfg := sessionTestConfig()
	r := sessionTestRouter(cfg)

	token, err := auth.NewJWTManager(cfg).GenerateSessionToken("id1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRequireSessionExpiredToken(t *testing.T) {
	cfg := sessionTestConfig()
	r := sessionTestRouter(cfg)

	expired := sessionTestConfig()
	expired.JWT.SessionExpiry = -time.Minute
	token, err := auth.NewJWTManager(expired).GenerateSessionToken("id1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for expired token, got %d", w.Code)
	}
}
