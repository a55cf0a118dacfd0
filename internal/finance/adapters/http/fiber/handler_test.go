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
	"github.com/google/uuid"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/finance/core/usecase"
	"lifeboard-service/internal/httputil"
)

type fakeRecordUC struct {
	ExecuteFn func(ctx context.Context, in usecase.RecordTransactionInput) (*domain.Transaction, error)
}

func (f *fakeRecordUC) Execute(ctx context.Context, in usecase.RecordTransactionInput) (*domain.Transaction, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Transaction{
		ID:         uuid.New(),
		UserID:     in.UserID,
		Amount:     in.Amount,
		Category:   in.Category,
		OccurredAt: time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC),
	}, nil
}

type fakeSpendUC struct {
	ExecuteFn func(ctx context.Context, in usecase.GetMonthlySpendInput) (domain.SpendSummary, bool, error)
}

func (f *fakeSpendUC) Execute(ctx context.Context, in usecase.GetMonthlySpendInput) (domain.SpendSummary, bool, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return domain.SpendSummary{ByCategory: map[string]float64{}}, false, nil
}

func setupTestApp(recordUC RecordTransactionUseCase, spendUC GetMonthlySpendUseCase) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("auth_user_id", "user_1")
		return c.Next()
	})

	h := NewFinanceHandler(recordUC, spendUC)
	app.Post("/finance/transactions", h.RecordTransaction)
	app.Get("/finance/spend/monthly", h.GetMonthlySpend)

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

func TestRecordTransaction_Created(t *testing.T) {
	app := setupTestApp(&fakeRecordUC{}, &fakeSpendUC{})

	resp, body := doRequest(t, app, http.MethodPost, "/finance/transactions", RecordTransactionRequest{
		Amount:   42.50,
		Category: "groceries",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", resp.StatusCode, body)
	}

	var env struct {
		Data TransactionResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data.Amount != 42.50 || env.Data.Category != "groceries" {
		t.Fatalf("unexpected transaction: %+v", env.Data)
	}
}

func TestRecordTransaction_Invalid(t *testing.T) {
	recordUC := &fakeRecordUC{
		ExecuteFn: func(ctx context.Context, in usecase.RecordTransactionInput) (*domain.Transaction, error) {
			return nil, usecase.ErrInvalidTransaction
		},
	}
	app := setupTestApp(recordUC, &fakeSpendUC{})

	resp, body := doRequest(t, app, http.MethodPost, "/finance/transactions", RecordTransactionRequest{})
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

func TestGetMonthlySpend_RoundsAndEchoesCacheFlag(t *testing.T) {
	spendUC := &fakeSpendUC{
		ExecuteFn: func(ctx context.Context, in usecase.GetMonthlySpendInput) (domain.SpendSummary, bool, error) {
			if in.UserID != "user_1" {
				t.Fatalf("caller identity lost, got %q", in.UserID)
			}
			return domain.SpendSummary{
				Month:      "2024-03-01",
				Total:      70.4899999,
				ByCategory: map[string]float64{"groceries": 60.5000001},
				Count:      3,
			}, true, nil
		},
	}
	app := setupTestApp(&fakeRecordUC{}, spendUC)

	resp, body := doRequest(t, app, http.MethodGet, "/finance/spend/monthly", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}

	var env struct {
		Data SpendResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data.Total != 70.49 || env.Data.ByCategory["groceries"] != 60.5 {
		t.Fatalf("expected cent rounding, got %+v", env.Data)
	}
	if !env.Data.Cached {
		t.Fatal("expected cached flag to pass through")
	}
}

func TestGetMonthlySpend_RegenerateFlag(t *testing.T) {
	var seen usecase.GetMonthlySpendInput
	spendUC := &fakeSpendUC{
		ExecuteFn: func(ctx context.Context, in usecase.GetMonthlySpendInput) (domain.SpendSummary, bool, error) {
			seen = in
			return domain.SpendSummary{ByCategory: map[string]float64{}}, false, nil
		},
	}
	app := setupTestApp(&fakeRecordUC{}, spendUC)

	resp, _ := doRequest(t, app, http.MethodGet, "/finance/spend/monthly?regenerate=true&date=2024-01-15", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !seen.Regenerate || seen.Date != "2024-01-15" {
		t.Fatalf("query params lost: %+v", seen)
	}
}
