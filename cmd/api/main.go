package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	financeHttp "lifeboard-service/internal/finance/adapters/http/fiber"
	financeRepoPg "lifeboard-service/internal/finance/adapters/postgres"
	financeUsecase "lifeboard-service/internal/finance/core/usecase"

	fitnessHttp "lifeboard-service/internal/fitness/adapters/http/fiber"
	fitnessRepoPg "lifeboard-service/internal/fitness/adapters/postgres"
	fitnessUsecase "lifeboard-service/internal/fitness/core/usecase"

	habitsHttp "lifeboard-service/internal/habits/adapters/http/fiber"
	habitsRepoPg "lifeboard-service/internal/habits/adapters/postgres"
	habitsUsecase "lifeboard-service/internal/habits/core/usecase"

	nutritionHttp "lifeboard-service/internal/nutrition/adapters/http/fiber"
	nutritionAI "lifeboard-service/internal/nutrition/adapters/openai"
	nutritionRepoPg "lifeboard-service/internal/nutrition/adapters/postgres"
	nutritionPorts "lifeboard-service/internal/nutrition/core/ports"
	nutritionUsecase "lifeboard-service/internal/nutrition/core/usecase"

	integrationsHttp "lifeboard-service/internal/integrations/adapters/http/fiber"
	integrationsOAuth "lifeboard-service/internal/integrations/adapters/oauth"
	integrationsRepoPg "lifeboard-service/internal/integrations/adapters/postgres"
	integrationsStrava "lifeboard-service/internal/integrations/adapters/strava"
	integrationsDomain "lifeboard-service/internal/integrations/core/domain"
	integrationsUsecase "lifeboard-service/internal/integrations/core/usecase"

	reviewsHttp "lifeboard-service/internal/reviews/adapters/http/fiber"
	reviewsUsecase "lifeboard-service/internal/reviews/core/usecase"

	snapshotMemo "lifeboard-service/internal/snapshot/adapters/memo"
	snapshotRepoPg "lifeboard-service/internal/snapshot/adapters/postgres"

	"lifeboard-service/internal/config"
	"lifeboard-service/internal/database"
	"lifeboard-service/internal/middleware"

	_ "lifeboard-service/docs"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// DB connection + migrations
	db, err := database.Open(cfg.PostgresDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Snapshot store: postgres behind an in-process memo layer
	snapshotRepo := snapshotRepoPg.NewSnapshotRepository(snapshotRepoPg.NewSQLDB(db))
	snapshots := snapshotMemo.NewStore(snapshotRepo, cfg.SnapshotTTL)

	now := time.Now

	// Repositories
	intakeRepository := nutritionRepoPg.NewIntakeRepository(nutritionRepoPg.NewSQLDB(db))
	workoutRepository := fitnessRepoPg.NewWorkoutRepository(fitnessRepoPg.NewSQLDB(db))
	habitRepository := habitsRepoPg.NewHabitRepository(habitsRepoPg.NewSQLDB(db))
	transactionRepository := financeRepoPg.NewTransactionRepository(financeRepoPg.NewSQLDB(db))
	tokenRepository := integrationsRepoPg.NewTokenRepository(integrationsRepoPg.NewSQLDB(db))

	// Nutrition
	var estimator nutritionPorts.EstimatorPort
	if cfg.OpenAIKey != "" {
		estimator = nutritionAI.NewEstimator(cfg.OpenAIKey)
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, macro estimation disabled")
	}
	estimatorQuota := middleware.NewQuota(cfg.EstimatorQuota)

	logIntakeUC := nutritionUsecase.NewLogIntakeUseCase(intakeRepository, now)
	dailySummaryUC := nutritionUsecase.NewGetDailySummaryUseCase(intakeRepository, snapshots, logger, now)
	estimateUC := nutritionUsecase.NewEstimateMacrosUseCase(estimator, estimatorQuota)

	// Fitness
	logWorkoutUC := fitnessUsecase.NewLogWorkoutUseCase(workoutRepository, now)
	rollupUC := fitnessUsecase.NewGetRollupUseCase(workoutRepository, snapshots, logger, now)

	// Habits
	manageHabitsUC := habitsUsecase.NewManageHabitsUseCase(habitRepository, now)
	completionRateUC := habitsUsecase.NewGetCompletionRateUseCase(habitRepository, now)

	// Finance
	recordTransactionUC := financeUsecase.NewRecordTransactionUseCase(transactionRepository, now)
	monthlySpendUC := financeUsecase.NewGetMonthlySpendUseCase(transactionRepository, snapshots, logger, now)

	// Reviews
	reviewUC := reviewsUsecase.NewGetReviewUseCase(
		habitRepository, workoutRepository, transactionRepository, snapshots, logger, now,
	)

	// Integrations
	refresher := integrationsOAuth.NewRefresher(map[integrationsDomain.Provider]integrationsOAuth.Credentials{
		integrationsDomain.ProviderGoogleCalendar: {ClientID: cfg.GoogleClientID, ClientSecret: cfg.GoogleClientSecret},
		integrationsDomain.ProviderSpotify:        {ClientID: cfg.SpotifyClientID, ClientSecret: cfg.SpotifyClientSecret},
		integrationsDomain.ProviderStrava:         {ClientID: cfg.StravaClientID, ClientSecret: cfg.StravaClientSecret},
	})
	activitySource := integrationsStrava.NewActivitySource(nil)

	storeTokenUC := integrationsUsecase.NewStoreTokenUseCase(tokenRepository, now)
	syncUC := integrationsUsecase.NewSyncUseCase(
		tokenRepository, refresher, activitySource, workoutRepository, logger, now,
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	app.Use(middleware.Auth(cfg.JWTSecret))

	nutritionHandler := nutritionHttp.NewNutritionHandler(logIntakeUC, dailySummaryUC, estimateUC)
	app.Post("/nutrition/intake", nutritionHandler.LogIntake)
	app.Get("/nutrition/summary/daily", nutritionHandler.GetDailySummary)
	app.Post("/nutrition/estimate", nutritionHandler.EstimateMacros)

	fitnessHandler := fitnessHttp.NewFitnessHandler(logWorkoutUC, rollupUC)
	app.Post("/fitness/sessions", fitnessHandler.StartSession)
	app.Post("/fitness/sessions/:id/complete", fitnessHandler.CompleteSession)
	app.Post("/fitness/sets", fitnessHandler.LogSet)
	app.Get("/fitness/rollup", fitnessHandler.GetRollup)

	habitsHandler := habitsHttp.NewHabitsHandler(manageHabitsUC, completionRateUC)
	app.Post("/habits", habitsHandler.CreateHabit)
	app.Post("/habits/:id/checkins", habitsHandler.CheckIn)
	app.Get("/habits/rate", habitsHandler.GetCompletionRate)

	financeHandler := financeHttp.NewFinanceHandler(recordTransactionUC, monthlySpendUC)
	app.Post("/finance/transactions", financeHandler.RecordTransaction)
	app.Get("/finance/spend/monthly", financeHandler.GetMonthlySpend)

	reviewsHandler := reviewsHttp.NewReviewsHandler(reviewUC)
	app.Get("/reviews", reviewsHandler.GetReview)

	integrationsHandler := integrationsHttp.NewIntegrationsHandler(storeTokenUC, syncUC)
	app.Put("/integrations/:provider/token", integrationsHandler.StoreToken)
	app.Post("/integrations/sync", integrationsHandler.Sync)

	// Scheduled provider sync
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SyncSchedule, func() {
		report, err := syncUC.Run(context.Background())
		if err != nil {
			logger.Error().Err(err).Msg("scheduled sync failed")
			return
		}
		logger.Info().
			Int("refreshed", report.Refreshed).
			Int("imported", report.Imported).
			Msg("scheduled sync finished")
	}); err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.SyncSchedule).Msg("invalid sync schedule")
	}
	scheduler.Start()

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			logger.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logger.Info().Str("addr", cfg.ListenAddr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info().Msg("shutting down")

	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("fiber shutdown error")
	}

	logger.Info().Msg("server exiting")
}
