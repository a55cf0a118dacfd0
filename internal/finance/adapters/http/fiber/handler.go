package fiber

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"lifeboard-service/internal/finance/core/domain"
	"lifeboard-service/internal/finance/core/usecase"
	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/middleware"
	"lifeboard-service/internal/period"
)

type RecordTransactionUseCase interface {
	Execute(ctx context.Context, in usecase.RecordTransactionInput) (*domain.Transaction, error)
}

type GetMonthlySpendUseCase interface {
	Execute(ctx context.Context, in usecase.GetMonthlySpendInput) (domain.SpendSummary, bool, error)
}

type FinanceHandler struct {
	recordUC RecordTransactionUseCase
	spendUC  GetMonthlySpendUseCase
}

func NewFinanceHandler(recordUC RecordTransactionUseCase, spendUC GetMonthlySpendUseCase) *FinanceHandler {
	return &FinanceHandler{recordUC: recordUC, spendUC: spendUC}
}

// RecordTransaction godoc
// @Summary Log an expense or refund
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body RecordTransactionRequest true "Transaction payload"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /finance/transactions [post]
func (h *FinanceHandler) RecordTransaction(c *fiber.Ctx) error {
	var req RecordTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	tx, err := h.recordUC.Execute(c.UserContext(), usecase.RecordTransactionInput{
		UserID:    middleware.UserID(c),
		Amount:    req.Amount,
		Category:  req.Category,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return failFinance(c, err)
	}

	return httputil.Data(c, http.StatusCreated, TransactionResponse{
		TransactionID: tx.ID.String(),
		Amount:        tx.Amount,
		Category:      tx.Category,
		OccurredAt:    tx.OccurredAt.Format(time.RFC3339),
	})
}

// GetMonthlySpend godoc
// @Summary Monthly spend summary
// @Description Returns the cached or freshly computed spend rollup for one month
// @Tags Finance
// @Produce json
// @Param date query string false "Any day of the wanted month (YYYY-MM-DD), defaults to this month"
// @Param regenerate query bool false "Force recomputation"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /finance/spend/monthly [get]
func (h *FinanceHandler) GetMonthlySpend(c *fiber.Ctx) error {
	s, cached, err := h.spendUC.Execute(c.UserContext(), usecase.GetMonthlySpendInput{
		UserID:     middleware.UserID(c),
		Date:       c.Query("date"),
		Regenerate: c.QueryBool("regenerate", false),
	})
	if err != nil {
		return failFinance(c, err)
	}

	byCategory := make(map[string]float64, len(s.ByCategory))
	for cat, v := range s.ByCategory {
		byCategory[cat] = round2(v)
	}

	return httputil.Data(c, http.StatusOK, SpendResponse{
		Month:      s.Month,
		Total:      round2(s.Total),
		ByCategory: byCategory,
		Count:      s.Count,
		Cached:     cached,
	})
}

func failFinance(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return httputil.Fail(c, httputil.CodeUnauthenticated, err.Error())
	case errors.Is(err, usecase.ErrInvalidTransaction),
		errors.Is(err, usecase.ErrFutureTime),
		errors.Is(err, period.ErrInvalidDate):
		return httputil.Fail(c, httputil.CodeValidation, err.Error())
	default:
		return httputil.Fail(c, httputil.CodeStoreFailure, "internal error")
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
