package fiber

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/middleware"
	"lifeboard-service/internal/period"
	"lifeboard-service/internal/reviews/core/domain"
	"lifeboard-service/internal/reviews/core/usecase"
)

type GetReviewUseCase interface {
	Execute(ctx context.Context, in usecase.GetReviewInput) (domain.Review, bool, error)
}

type ReviewsHandler struct {
	reviewUC GetReviewUseCase
}

func NewReviewsHandler(reviewUC GetReviewUseCase) *ReviewsHandler {
	return &ReviewsHandler{reviewUC: reviewUC}
}

// GetReview godoc
// @Summary Cross-feature review for the current week or month
// @Description Returns the cached or freshly computed review metrics
// @Tags Reviews
// @Produce json
// @Param period query string true "weekly or monthly"
// @Param regenerate query bool false "Force recomputation"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /reviews [get]
func (h *ReviewsHandler) GetReview(c *fiber.Ctx) error {
	review, cached, err := h.reviewUC.Execute(c.UserContext(), usecase.GetReviewInput{
		UserID:     middleware.UserID(c),
		PeriodType: period.Type(c.Query("period", string(period.Weekly))),
		Regenerate: c.QueryBool("regenerate", false),
	})
	if err != nil {
		return failReviews(c, err)
	}

	metrics := make(map[string]float64, len(review.Metrics))
	for name, v := range review.Metrics {
		metrics[name] = math.Round(v*10) / 10
	}

	return httputil.Data(c, http.StatusOK, ReviewResponse{
		From:       review.From,
		To:         review.To,
		PeriodType: string(review.PeriodType),
		Metrics:    metrics,
		ComputedAt: review.ComputedAt.Format(time.RFC3339),
		Cached:     cached,
	})
}

func failReviews(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return httputil.Fail(c, httputil.CodeUnauthenticated, err.Error())
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return httputil.Fail(c, httputil.CodeValidation, err.Error())
	default:
		return httputil.Fail(c, httputil.CodeStoreFailure, "internal error")
	}
}
