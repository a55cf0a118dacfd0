package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/usecase"
)

type fakeTokenUC struct {
	ExecuteFn func(ctx context.Context, in usecase.StoreTokenInput) (*domain.ProviderToken, error)
}

func (f *fakeTokenUC) Execute(ctx context.Context, in usecase.StoreTokenInput) (*domain.ProviderToken, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.ProviderToken{
		UserID:    in.UserID,
		Provider:  domain.Provider(in.Provider),
		ExpiresAt: time.Date(2024, 3, 3, 18, 0, 0, 0, time.UTC),
	}, nil
}

type fakeSyncUC struct {
	SyncUserFn func(ctx context.Context, userID string) (usecase.SyncReport, error)
}

func (f *fakeSyncUC) SyncUser(ctx context.Context, userID string) (usecase.SyncReport, error) {
	if f.SyncUserFn != nil {
		return f.SyncUserFn(ctx, userID)
	}
	return usecase.SyncReport{}, nil
}

func setupTestApp(tokenUC StoreTokenUseCase, syncUC SyncUseCase) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("auth_user_id", "user_1")
		return c.Next()
	})

	h := NewIntegrationsHandler(tokenUC, syncUC)
	app.Put("/integrations/:provider/token", h.StoreToken)
	app.Post("/integrations/sync", h.Sync)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func TestStoreToken_OK(t *testing.T) {
	var seen usecase.StoreTokenInput
	tokenUC := &fakeTokenUC{
		ExecuteFn: func(ctx context.Context, in usecase.StoreTokenInput) (*domain.ProviderToken, error) {
			seen = in
			return &domain.ProviderToken{
				Provider:  domain.ProviderStrava,
				ExpiresAt: time.Date(2024, 3, 3, 18, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	app := setupTestApp(tokenUC, &fakeSyncUC{})

	resp, body := doRequest(t, app, http.MethodPut, "/integrations/strava/token", StoreTokenRequest{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    1709488800,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}
	if seen.Provider != "strava" || seen.UserID != "user_1" {
		t.Fatalf("unexpected input: %+v", seen)
	}

	var env struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data.Provider != "strava" {
		t.Fatalf("unexpected response: %+v", env.Data)
	}
}

func TestStoreToken_UnknownProvider(t *testing.T) {
	tokenUC := &fakeTokenUC{
		ExecuteFn: func(ctx context.Context, in usecase.StoreTokenInput) (*domain.ProviderToken, error) {
			return nil, usecase.ErrUnknownProvider
		},
	}
	app := setupTestApp(tokenUC, &fakeSyncUC{})

	resp, body := doRequest(t, app, http.MethodPut, "/integrations/myspace/token", StoreTokenRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var env httputil.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Error == nil || env.Error.Code != httputil.CodeValidation {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}

func TestSync_ReportsCounts(t *testing.T) {
	syncUC := &fakeSyncUC{
		SyncUserFn: func(ctx context.Context, userID string) (usecase.SyncReport, error) {
			if userID != "user_1" {
				t.Fatalf("caller identity lost, got %q", userID)
			}
			return usecase.SyncReport{Refreshed: 1, Imported: 3}, nil
		},
	}
	app := setupTestApp(&fakeTokenUC{}, syncUC)

	resp, body := doRequest(t, app, http.MethodPost, "/integrations/sync", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}

	var env struct {
		Data SyncResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data.Refreshed != 1 || env.Data.Imported != 3 {
		t.Fatalf("unexpected report: %+v", env.Data)
	}
}
