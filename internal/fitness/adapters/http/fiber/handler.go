package fiber

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"lifeboard-service/internal/fitness/core/domain"
	"lifeboard-service/internal/fitness/core/usecase"
	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/middleware"
)

type LogWorkoutUseCase interface {
	StartSession(ctx context.Context, in usecase.StartSessionInput) (*domain.Session, error)
	CompleteSession(ctx context.Context, in usecase.CompleteSessionInput) error
	LogSet(ctx context.Context, in usecase.LogSetInput) (*domain.Set, error)
}

type GetRollupUseCase interface {
	Execute(ctx context.Context, in usecase.GetRollupInput) (domain.Rollup, error)
}

type FitnessHandler struct {
	workoutUC LogWorkoutUseCase
	rollupUC  GetRollupUseCase
}

func NewFitnessHandler(workoutUC LogWorkoutUseCase, rollupUC GetRollupUseCase) *FitnessHandler {
	return &FitnessHandler{workoutUC: workoutUC, rollupUC: rollupUC}
}

// StartSession godoc
// @Summary Start a workout session
// @Tags Fitness
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Session payload"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /fitness/sessions [post]
func (h *FitnessHandler) StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	s, err := h.workoutUC.StartSession(c.UserContext(), usecase.StartSessionInput{
		UserID:    middleware.UserID(c),
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return failFitness(c, err)
	}

	return httputil.Data(c, http.StatusCreated, SessionResponse{
		SessionID: s.ID.String(),
		StartedAt: s.StartedAt.Format(time.RFC3339),
	})
}

// CompleteSession godoc
// @Summary Complete a workout session
// @Tags Fitness
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /fitness/sessions/{id}/complete [post]
func (h *FitnessHandler) CompleteSession(c *fiber.Ctx) error {
	err := h.workoutUC.CompleteSession(c.UserContext(), usecase.CompleteSessionInput{
		UserID:    middleware.UserID(c),
		SessionID: c.Params("id"),
	})
	if err != nil {
		return failFitness(c, err)
	}

	return httputil.Data(c, http.StatusOK, fiber.Map{"status": "completed"})
}

// LogSet godoc
// @Summary Log a completed set
// @Tags Fitness
// @Accept json
// @Produce json
// @Param request body LogSetRequest true "Set payload"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /fitness/sets [post]
func (h *FitnessHandler) LogSet(c *fiber.Ctx) error {
	var req LogSetRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	set, err := h.workoutUC.LogSet(c.UserContext(), usecase.LogSetInput{
		UserID:    middleware.UserID(c),
		SessionID: req.SessionID,
		Exercise:  req.Exercise,
		Reps:      req.Reps,
		LoadKg:    req.LoadKg,
	})
	if err != nil {
		return failFitness(c, err)
	}

	return httputil.Data(c, http.StatusCreated, SetResponse{
		SetID:    set.ID.String(),
		VolumeKg: set.Volume(),
	})
}

// GetRollup godoc
// @Summary Streak and monthly volume rollup
// @Tags Fitness
// @Produce json
// @Param regenerate query bool false "Force recomputation of the monthly stats"
// @Success 200 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /fitness/rollup [get]
func (h *FitnessHandler) GetRollup(c *fiber.Ctx) error {
	rollup, err := h.rollupUC.Execute(c.UserContext(), usecase.GetRollupInput{
		UserID:     middleware.UserID(c),
		Regenerate: c.QueryBool("regenerate", false),
	})
	if err != nil {
		return failFitness(c, err)
	}

	return httputil.Data(c, http.StatusOK, RollupResponse{
		Streak:          rollup.Streak,
		MonthlyVolumeKg: math.Round(rollup.Monthly.VolumeKg*10) / 10,
		SessionCount:    rollup.Monthly.SessionCount,
		PRCount:         rollup.Monthly.PRCount,
	})
}

func failFitness(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return httputil.Fail(c, httputil.CodeUnauthenticated, err.Error())
	case errors.Is(err, usecase.ErrInvalidSession),
		errors.Is(err, usecase.ErrInvalidSet),
		errors.Is(err, usecase.ErrFutureTime):
		return httputil.Fail(c, httputil.CodeValidation, err.Error())
	case errors.Is(err, usecase.ErrSessionNotFound):
		return httputil.Fail(c, httputil.CodeNotFound, err.Error())
	default:
		return httputil.Fail(c, httputil.CodeStoreFailure, "internal error")
	}
}
