package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"lifeboard-service/internal/httputil"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func setupAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(Auth(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return httputil.Data(c, http.StatusOK, fiber.Map{"user_id": UserID(c)})
	})
	return app
}

func doAuthRequest(t *testing.T, app *fiber.App, header string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func TestAuth_MissingHeader(t *testing.T) {
	app := setupAuthApp()

	resp, body := doAuthRequest(t, app, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body: %s)", resp.StatusCode, body)
	}

	var env httputil.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Error == nil || env.Error.Code != httputil.CodeUnauthenticated {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	app := setupAuthApp()

	resp, _ := doAuthRequest(t, app, "Token abc")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuth_BadSignature(t *testing.T) {
	app := setupAuthApp()

	token := signToken(t, "other-secret", "user_1")
	resp, _ := doAuthRequest(t, app, "Bearer "+token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	app := setupAuthApp()

	token := signToken(t, testSecret, "user_42")
	resp, body := doAuthRequest(t, app, "Bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}

	var env struct {
		Data struct {
			UserID string `json:"user_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data.UserID != "user_42" {
		t.Fatalf("expected user_42, got %q", env.Data.UserID)
	}
}

func TestQuota_ExhaustsAndIsolatesKeys(t *testing.T) {
	q := NewQuota(2)

	if !q.Allow("a") || !q.Allow("a") {
		t.Fatal("first two calls should pass")
	}
	if q.Allow("a") {
		t.Fatal("third call within the window should be rejected")
	}
	if !q.Allow("b") {
		t.Fatal("other keys must have an independent budget")
	}
}
