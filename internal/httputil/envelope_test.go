package httputil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestEnvelope_DataOnly(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Data(c, http.StatusOK, fiber.Map{"total": 850})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := env["data"]; !ok {
		t.Fatal("expected data field")
	}
	if _, ok := env["error"]; ok {
		t.Fatal("data envelope must not carry an error field")
	}
}

func TestEnvelope_ErrorOnly(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Fail(c, CodeValidation, "date is required")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data != nil {
		t.Fatal("error envelope must not carry data")
	}
	if env.Error == nil || env.Error.Code != CodeValidation {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}

func TestStatusFor_Mapping(t *testing.T) {
	cases := map[string]int{
		CodeUnauthenticated: http.StatusUnauthorized,
		CodeValidation:      http.StatusBadRequest,
		CodeNotFound:        http.StatusNotFound,
		CodeQuotaExceeded:   http.StatusTooManyRequests,
		CodeConfigMissing:   http.StatusServiceUnavailable,
		CodeStoreFailure:    http.StatusInternalServerError,
		CodeComputeFailure:  http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Errorf("StatusFor(%s) = %d, want %d", code, got, want)
		}
	}
}
