package fiber

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lifeboard-service/internal/habits/core/domain"
	"lifeboard-service/internal/habits/core/usecase"
	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/middleware"
	"lifeboard-service/internal/period"
)

type ManageHabitsUseCase interface {
	CreateHabit(ctx context.Context, in usecase.CreateHabitInput) (*domain.Habit, error)
	CheckIn(ctx context.Context, in usecase.CheckInInput) (*usecase.CheckInResult, error)
}

type GetCompletionRateUseCase interface {
	Execute(ctx context.Context, userID, from, to string) (*domain.RateSummary, error)
}

type HabitsHandler struct {
	manageUC ManageHabitsUseCase
	rateUC   GetCompletionRateUseCase
}

func NewHabitsHandler(manageUC ManageHabitsUseCase, rateUC GetCompletionRateUseCase) *HabitsHandler {
	return &HabitsHandler{manageUC: manageUC, rateUC: rateUC}
}

// CreateHabit godoc
// @Summary Register a recurring habit
// @Tags Habits
// @Accept json
// @Produce json
// @Param request body CreateHabitRequest true "Habit payload"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /habits [post]
func (h *HabitsHandler) CreateHabit(c *fiber.Ctx) error {
	var req CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	habit, err := h.manageUC.CreateHabit(c.UserContext(), usecase.CreateHabitInput{
		UserID:  middleware.UserID(c),
		Name:    req.Name,
		Cadence: req.Cadence,
	})
	if err != nil {
		return failHabits(c, err)
	}

	return httputil.Data(c, http.StatusCreated, HabitResponse{
		HabitID: habit.ID.String(),
		Name:    habit.Name,
		Cadence: habit.Cadence,
	})
}

// CheckIn godoc
// @Summary Check in a habit for a day
// @Tags Habits
// @Accept json
// @Produce json
// @Param id path string true "Habit id"
// @Param request body CheckInRequest true "Check-in payload"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /habits/{id}/checkins [post]
func (h *HabitsHandler) CheckIn(c *fiber.Ctx) error {
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid habit id")
	}

	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	res, err := h.manageUC.CheckIn(c.UserContext(), usecase.CheckInInput{
		UserID:  middleware.UserID(c),
		HabitID: habitID,
		Day:     req.Day,
	})
	if err != nil {
		return failHabits(c, err)
	}

	return httputil.Data(c, http.StatusOK, CheckInResponse{
		HabitID: res.Completion.HabitID.String(),
		Day:     period.FormatDate(res.Completion.Day),
		Created: res.Created,
	})
}

// GetCompletionRate godoc
// @Summary Habit completion rate over a date range
// @Tags Habits
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD), defaults to today"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to from+7d"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /habits/rate [get]
func (h *HabitsHandler) GetCompletionRate(c *fiber.Ctx) error {
	s, err := h.rateUC.Execute(c.UserContext(), middleware.UserID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return failHabits(c, err)
	}

	return httputil.Data(c, http.StatusOK, RateResponse{
		From:        s.From,
		To:          s.To,
		HabitCount:  s.HabitCount,
		Completions: s.Completions,
		Rate:        math.Round(s.Rate*10) / 10,
	})
}

func failHabits(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return httputil.Fail(c, httputil.CodeUnauthenticated, err.Error())
	case errors.Is(err, usecase.ErrInvalidHabit),
		errors.Is(err, usecase.ErrFutureDay),
		errors.Is(err, period.ErrInvalidDate),
		errors.Is(err, period.ErrInvalidRange):
		return httputil.Fail(c, httputil.CodeValidation, err.Error())
	case errors.Is(err, usecase.ErrHabitNotFound):
		return httputil.Fail(c, httputil.CodeNotFound, err.Error())
	default:
		return httputil.Fail(c, httputil.CodeStoreFailure, "internal error")
	}
}
