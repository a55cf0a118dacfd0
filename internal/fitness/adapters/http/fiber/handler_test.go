package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lifeboard-service/internal/fitness/core/domain"
	"lifeboard-service/internal/fitness/core/usecase"
	"lifeboard-service/internal/httputil"
)

type fakeWorkoutUC struct {
	StartFn    func(ctx context.Context, in usecase.StartSessionInput) (*domain.Session, error)
	CompleteFn func(ctx context.Context, in usecase.CompleteSessionInput) error
	LogSetFn   func(ctx context.Context, in usecase.LogSetInput) (*domain.Set, error)
}

func (f *fakeWorkoutUC) StartSession(ctx context.Context, in usecase.StartSessionInput) (*domain.Session, error) {
	if f.StartFn != nil {
		return f.StartFn(ctx, in)
	}
	return &domain.Session{ID: uuid.New()}, nil
}

func (f *fakeWorkoutUC) CompleteSession(ctx context.Context, in usecase.CompleteSessionInput) error {
	if f.CompleteFn != nil {
		return f.CompleteFn(ctx, in)
	}
	return nil
}

func (f *fakeWorkoutUC) LogSet(ctx context.Context, in usecase.LogSetInput) (*domain.Set, error) {
	if f.LogSetFn != nil {
		return f.LogSetFn(ctx, in)
	}
	return &domain.Set{ID: uuid.New()}, nil
}

type fakeRollupUC struct {
	ExecuteFn func(ctx context.Context, in usecase.GetRollupInput) (domain.Rollup, error)
}

func (f *fakeRollupUC) Execute(ctx context.Context, in usecase.GetRollupInput) (domain.Rollup, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return domain.Rollup{}, nil
}

func setupTestApp(workoutUC LogWorkoutUseCase, rollupUC GetRollupUseCase) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("auth_user_id", "user_1")
		return c.Next()
	})

	h := NewFitnessHandler(workoutUC, rollupUC)
	app.Post("/fitness/sessions", h.StartSession)
	app.Post("/fitness/sessions/:id/complete", h.CompleteSession)
	app.Post("/fitness/sets", h.LogSet)
	app.Get("/fitness/rollup", h.GetRollup)

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

func TestStartSession_Created(t *testing.T) {
	app := setupTestApp(&fakeWorkoutUC{}, &fakeRollupUC{})

	resp, body := doRequest(t, app, http.MethodPost, "/fitness/sessions", StartSessionRequest{})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", resp.StatusCode, body)
	}
}

func TestCompleteSession_NotFound(t *testing.T) {
	workoutUC := &fakeWorkoutUC{
		CompleteFn: func(ctx context.Context, in usecase.CompleteSessionInput) error {
			return usecase.ErrSessionNotFound
		},
	}
	app := setupTestApp(workoutUC, &fakeRollupUC{})

	resp, body := doRequest(t, app, http.MethodPost, "/fitness/sessions/"+uuid.NewString()+"/complete", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var env httputil.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Error == nil || env.Error.Code != httputil.CodeNotFound {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}
}

func TestLogSet_BadPayload(t *testing.T) {
	workoutUC := &fakeWorkoutUC{
		LogSetFn: func(ctx context.Context, in usecase.LogSetInput) (*domain.Set, error) {
			return nil, usecase.ErrInvalidSet
		},
	}
	app := setupTestApp(workoutUC, &fakeRollupUC{})

	resp, _ := doRequest(t, app, http.MethodPost, "/fitness/sets", LogSetRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetRollup_Response(t *testing.T) {
	rollupUC := &fakeRollupUC{
		ExecuteFn: func(ctx context.Context, in usecase.GetRollupInput) (domain.Rollup, error) {
			if in.UserID != "user_1" {
				t.Fatalf("caller identity lost, got %q", in.UserID)
			}
			return domain.Rollup{
				Streak:  3,
				Monthly: domain.MonthlyStats{VolumeKg: 830.04, SessionCount: 2, PRCount: 1},
			}, nil
		},
	}
	app := setupTestApp(&fakeWorkoutUC{}, rollupUC)

	resp, body := doRequest(t, app, http.MethodGet, "/fitness/rollup", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.StatusCode, body)
	}

	var env struct {
		Data RollupResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Data.Streak != 3 || env.Data.MonthlyVolumeKg != 830 {
		t.Fatalf("unexpected rollup: %+v", env.Data)
	}
}
