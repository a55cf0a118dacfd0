package fiber

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/middleware"
	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/usecase"
	"lifeboard-service/internal/period"
)

type LogIntakeUseCase interface {
	Execute(ctx context.Context, in usecase.LogIntakeInput) (*domain.IntakeEvent, error)
}

type GetDailySummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetDailySummaryInput) (domain.DailySummary, bool, error)
}

type EstimateMacrosUseCase interface {
	Execute(ctx context.Context, in usecase.EstimateMacrosInput) (domain.MacroEstimate, error)
}

type NutritionHandler struct {
	logUC      LogIntakeUseCase
	summaryUC  GetDailySummaryUseCase
	estimateUC EstimateMacrosUseCase
}

func NewNutritionHandler(logUC LogIntakeUseCase, summaryUC GetDailySummaryUseCase, estimateUC EstimateMacrosUseCase) *NutritionHandler {
	return &NutritionHandler{logUC: logUC, summaryUC: summaryUC, estimateUC: estimateUC}
}

// LogIntake godoc
// @Summary Log an intake event
// @Description Records a meal with its items and macro values
// @Tags Nutrition
// @Accept json
// @Produce json
// @Param request body LogIntakeRequest true "Intake payload"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Failure 500 {object} httputil.Envelope
// @Router /nutrition/intake [post]
func (h *NutritionHandler) LogIntake(c *fiber.Ctx) error {
	var req LogIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	items := make([]usecase.IntakeItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = usecase.IntakeItemInput{
			Name:           it.Name,
			Calories:       it.Calories,
			ProteinG:       it.ProteinG,
			CarbsG:         it.CarbsG,
			FatG:           it.FatG,
			EditedCalories: it.EditedCalories,
			EditedProtein:  it.EditedProtein,
			EditedCarbs:    it.EditedCarbs,
			EditedFat:      it.EditedFat,
		}
	}

	event, err := h.logUC.Execute(c.UserContext(), usecase.LogIntakeInput{
		UserID:    middleware.UserID(c),
		MealType:  req.MealType,
		Timestamp: req.Timestamp,
		Items:     items,
	})
	if err != nil {
		return failNutrition(c, err)
	}

	return httputil.Data(c, http.StatusCreated, LogIntakeResponse{
		EventID: event.ID.String(),
		Items:   len(items),
	})
}

// GetDailySummary godoc
// @Summary Daily nutrition summary
// @Description Returns the cached or freshly computed macro totals for one day
// @Tags Nutrition
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Param regenerate query bool false "Force recomputation"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Failure 500 {object} httputil.Envelope
// @Router /nutrition/summary/daily [get]
func (h *NutritionHandler) GetDailySummary(c *fiber.Ctx) error {
	summary, cached, err := h.summaryUC.Execute(c.UserContext(), usecase.GetDailySummaryInput{
		UserID:     middleware.UserID(c),
		Date:       c.Query("date", ""),
		Regenerate: c.QueryBool("regenerate", false),
	})
	if err != nil {
		return failNutrition(c, err)
	}

	return httputil.Data(c, http.StatusOK, DailySummaryResponse{
		Date:      summary.Date,
		Calories:  round1(summary.Calories),
		ProteinG:  round1(summary.ProteinG),
		CarbsG:    round1(summary.CarbsG),
		FatG:      round1(summary.FatG),
		ItemCount: summary.ItemCount,
		Cached:    cached,
	})
}

// EstimateMacros godoc
// @Summary Estimate macros for a food description
// @Description AI-backed estimate, throttled per caller
// @Tags Nutrition
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Food description"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Failure 429 {object} httputil.Envelope
// @Failure 503 {object} httputil.Envelope
// @Router /nutrition/estimate [post]
func (h *NutritionHandler) EstimateMacros(c *fiber.Ctx) error {
	var req EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	est, err := h.estimateUC.Execute(c.UserContext(), usecase.EstimateMacrosInput{
		UserID:      middleware.UserID(c),
		Description: req.Description,
	})
	if err != nil {
		return failNutrition(c, err)
	}

	return httputil.Data(c, http.StatusOK, EstimateResponse{
		Calories: round1(est.Calories),
		ProteinG: round1(est.ProteinG),
		CarbsG:   round1(est.CarbsG),
		FatG:     round1(est.FatG),
	})
}

func failNutrition(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return httputil.Fail(c, httputil.CodeUnauthenticated, err.Error())
	case errors.Is(err, usecase.ErrInvalidIntake),
		errors.Is(err, usecase.ErrFutureTime),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, period.ErrInvalidDate):
		return httputil.Fail(c, httputil.CodeValidation, err.Error())
	case errors.Is(err, usecase.ErrQuotaExceeded):
		return httputil.Fail(c, httputil.CodeQuotaExceeded, err.Error())
	case errors.Is(err, usecase.ErrConfigMissing):
		return httputil.Fail(c, httputil.CodeConfigMissing, err.Error())
	default:
		return httputil.Fail(c, httputil.CodeStoreFailure, "internal error")
	}
}

// rounding happens here, at the presentation edge, never mid-aggregation
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
