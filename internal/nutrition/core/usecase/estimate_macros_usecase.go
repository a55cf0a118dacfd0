package usecase

import (
	"context"
	"errors"

	"lifeboard-service/internal/nutrition/core/domain"
	"lifeboard-service/internal/nutrition/core/ports"
)

var (
	ErrInvalidDescription = errors.New("description is required")
	ErrQuotaExceeded      = errors.New("estimation quota exceeded")
	ErrConfigMissing      = errors.New("estimator is not configured")
)

// EstimateMacrosUseCase throttles and delegates AI-backed macro
// estimation. A nil estimator means no API key was configured; the error
// surfaces at call time, not at startup.
type EstimateMacrosUseCase struct {
	estimator ports.EstimatorPort
	quota     ports.QuotaPort
}

func NewEstimateMacrosUseCase(estimator ports.EstimatorPort, quota ports.QuotaPort) *EstimateMacrosUseCase {
	return &EstimateMacrosUseCase{estimator: estimator, quota: quota}
}

type EstimateMacrosInput struct {
	UserID      string
	Description string
}

func (uc *EstimateMacrosUseCase) Execute(ctx context.Context, in EstimateMacrosInput) (domain.MacroEstimate, error) {
	if in.UserID == "" {
		return domain.MacroEstimate{}, ErrUnauthenticated
	}
	if in.Description == "" {
		return domain.MacroEstimate{}, ErrInvalidDescription
	}
	if uc.estimator == nil {
		return domain.MacroEstimate{}, ErrConfigMissing
	}
	if !uc.quota.Allow(in.UserID) {
		return domain.MacroEstimate{}, ErrQuotaExceeded
	}

	return uc.estimator.EstimateMacros(ctx, in.Description)
}
