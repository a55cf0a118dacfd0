package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"lifeboard-service/internal/httputil"
	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/usecase"
	"lifeboard-service/internal/middleware"
)

type StoreTokenUseCase interface {
	Execute(ctx context.Context, in usecase.StoreTokenInput) (*domain.ProviderToken, error)
}

type SyncUseCase interface {
	SyncUser(ctx context.Context, userID string) (usecase.SyncReport, error)
}

type IntegrationsHandler struct {
	tokenUC StoreTokenUseCase
	syncUC  SyncUseCase
}

func NewIntegrationsHandler(tokenUC StoreTokenUseCase, syncUC SyncUseCase) *IntegrationsHandler {
	return &IntegrationsHandler{tokenUC: tokenUC, syncUC: syncUC}
}

// StoreToken godoc
// @Summary Store granted OAuth credentials for a provider
// @Tags Integrations
// @Accept json
// @Produce json
// @Param provider path string true "google_calendar, spotify or strava"
// @Param request body StoreTokenRequest true "Token payload"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /integrations/{provider}/token [put]
func (h *IntegrationsHandler) StoreToken(c *fiber.Ctx) error {
	var req StoreTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Fail(c, httputil.CodeValidation, "invalid json")
	}

	token, err := h.tokenUC.Execute(c.UserContext(), usecase.StoreTokenInput{
		UserID:       middleware.UserID(c),
		Provider:     c.Params("provider"),
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		return failIntegrations(c, err)
	}

	return httputil.Data(c, http.StatusOK, TokenResponse{
		Provider:  string(token.Provider),
		ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
	})
}

// Sync godoc
// @Summary Refresh tokens and import provider activities now
// @Tags Integrations
// @Produce json
// @Success 200 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /integrations/sync [post]
func (h *IntegrationsHandler) Sync(c *fiber.Ctx) error {
	report, err := h.syncUC.SyncUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return failIntegrations(c, err)
	}

	return httputil.Data(c, http.StatusOK, SyncResponse{
		Refreshed: report.Refreshed,
		Imported:  report.Imported,
	})
}

func failIntegrations(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return httputil.Fail(c, httputil.CodeUnauthenticated, err.Error())
	case errors.Is(err, usecase.ErrUnknownProvider),
		errors.Is(err, usecase.ErrInvalidToken):
		return httputil.Fail(c, httputil.CodeValidation, err.Error())
	default:
		return httputil.Fail(c, httputil.CodeStoreFailure, "internal error")
	}
}
