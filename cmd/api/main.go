// Package main is the entry point for the Fiscal Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fiscal-tracker/backend/config"
	"github.com/fiscal-tracker/backend/internal/application/usecase/auth"
	"github.com/fiscal-tracker/backend/internal/application/usecase/client"
	"github.com/fiscal-tracker/backend/internal/application/usecase/dashboard"
	"github.com/fiscal-tracker/backend/internal/application/usecase/history"
	"github.com/fiscal-tracker/backend/internal/application/usecase/installment"
	"github.com/fiscal-tracker/backend/internal/application/usecase/obligation"
	"github.com/fiscal-tracker/backend/internal/application/usecase/responsible"
	"github.com/fiscal-tracker/backend/internal/application/usecase/suggestion"
	"github.com/fiscal-tracker/backend/internal/application/usecase/tax"
	"github.com/fiscal-tracker/backend/internal/infra/db"
	"github.com/fiscal-tracker/backend/internal/infra/server/router"
	"github.com/fiscal-tracker/backend/internal/integration/adapters"
	"github.com/fiscal-tracker/backend/internal/integration/email"
	"github.com/fiscal-tracker/backend/internal/integration/email/templates"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/fiscal-tracker/backend/internal/integration/persistence"
	"github.com/fiscal-tracker/backend/internal/integration/persistence/model"
	"github.com/fiscal-tracker/backend/internal/integration/scheduler"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Fiscal Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
		database = nil
	} else {
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.ClientModel{},
			&model.ResponsibleModel{},
			&model.ObligationModel{},
			&model.TaxModel{},
			&model.InstallmentPlanModel{},
			&model.ChangeRecordModel{},
			&model.ReminderQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis connection. The API degrades gracefully without it:
	// rate limiting falls back to in-process counters and the holiday
	// calendar computes dates locally.
	var redisClient *redis.Client
	redisHealthChecker := func() bool { return false }
	if cfg.Redis.Enabled {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Invalid Redis URL, running without Redis", "error", err)
		} else {
			if cfg.Redis.Password != "" {
				opts.Password = cfg.Redis.Password
			}
			opts.DB = cfg.Redis.DB
			redisClient = redis.NewClient(opts)

			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				slog.Warn("Redis connection failed, running without Redis", "error", err)
			} else {
				slog.Info("Redis connection established")
			}
			cancel()

			rc := redisClient
			redisHealthChecker = func() bool {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return rc.Ping(ctx).Err() == nil
			}
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close Redis connection", "error", err)
				}
			}()
		}
	}

	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker)

	var (
		authController        *controller.AuthController
		obligationController  *controller.ObligationController
		clientController      *controller.ClientController
		responsibleController *controller.ResponsibleController
		taxController         *controller.TaxController
		installmentController *controller.InstallmentController
		dashboardController   *controller.DashboardController
		historyController     *controller.HistoryController
		suggestionController  *controller.SuggestionController
		loginRateLimiter      *middleware.RateLimiter
		authMiddleware        *middleware.AuthMiddleware
	)

	// Background workers are started below; their cancel propagates on shutdown.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if database != nil {
		// Repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		clientRepo := persistence.NewClientRepository(database.DB())
		responsibleRepo := persistence.NewResponsibleRepository(database.DB())
		obligationRepo := persistence.NewObligationRepository(database.DB())
		taxRepo := persistence.NewTaxRepository(database.DB())
		installmentRepo := persistence.NewInstallmentRepository(database.DB())
		historyRepo := persistence.NewHistoryRepository(database.DB())
		reminderQueueRepo := persistence.NewReminderQueueRepository(database.DB())

		// Adapters and services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
		resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
		holidayCalendar := adapters.NewBrazilianHolidayCalendar(redisClient, logger)
		geminiService := adapters.NewGeminiServiceWithModel(cfg.Gemini.APIKey, cfg.Gemini.Model)
		reminderService := email.NewService(reminderQueueRepo, cfg.Email.AppBaseURL)
		processingTracker := suggestion.NewInMemoryProcessingTracker()

		// Auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, reminderService, cfg.Email.AppBaseURL)
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

		// Obligation use cases
		listObligationsUseCase := obligation.NewListObligationsUseCase(obligationRepo)
		createObligationUseCase := obligation.NewCreateObligationUseCase(obligationRepo, clientRepo, responsibleRepo, holidayCalendar)
		getObligationUseCase := obligation.NewGetObligationUseCase(obligationRepo)
		updateObligationUseCase := obligation.NewUpdateObligationUseCase(obligationRepo, clientRepo, responsibleRepo, historyRepo, holidayCalendar)
		completeObligationUseCase := obligation.NewCompleteObligationUseCase(obligationRepo, historyRepo, holidayCalendar)
		deleteObligationUseCase := obligation.NewDeleteObligationUseCase(obligationRepo)

		// Registry use cases
		listClientsUseCase := client.NewListClientsUseCase(clientRepo)
		createClientUseCase := client.NewCreateClientUseCase(clientRepo)
		updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
		deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo, obligationRepo)
		listResponsiblesUseCase := responsible.NewListResponsiblesUseCase(responsibleRepo)
		createResponsibleUseCase := responsible.NewCreateResponsibleUseCase(responsibleRepo)
		updateResponsibleUseCase := responsible.NewUpdateResponsibleUseCase(responsibleRepo)
		deleteResponsibleUseCase := responsible.NewDeleteResponsibleUseCase(responsibleRepo, obligationRepo)

		// Tax template use cases
		listTaxesUseCase := tax.NewListTaxesUseCase(taxRepo)
		createTaxUseCase := tax.NewCreateTaxUseCase(taxRepo)
		updateTaxUseCase := tax.NewUpdateTaxUseCase(taxRepo)
		deleteTaxUseCase := tax.NewDeleteTaxUseCase(taxRepo)
		generateObligationsUseCase := tax.NewGenerateObligationsUseCase(taxRepo, obligationRepo, holidayCalendar)

		// Installment use cases
		listPlansUseCase := installment.NewListPlansUseCase(installmentRepo)
		createPlanUseCase := installment.NewCreatePlanUseCase(installmentRepo, clientRepo, responsibleRepo, holidayCalendar)
		advanceInstallmentUseCase := installment.NewAdvanceInstallmentUseCase(installmentRepo, holidayCalendar)
		changePlanStatusUseCase := installment.NewChangePlanStatusUseCase(installmentRepo)
		deletePlanUseCase := installment.NewDeletePlanUseCase(installmentRepo)

		// Dashboard use cases
		statisticsUseCase := dashboard.NewGetStatisticsUseCase(obligationRepo)
		upcomingUseCase := dashboard.NewGetUpcomingUseCase(obligationRepo)
		kindSummaryUseCase := dashboard.NewGetKindSummaryUseCase(obligationRepo)
		calendarUseCase := dashboard.NewGetCalendarUseCase(obligationRepo)

		// History use case
		listChangesUseCase := history.NewListChangesUseCase(historyRepo)

		// Suggestion use cases
		startSuggestionUseCase := suggestion.NewStartSuggestionUseCase(geminiService, processingTracker)
		suggestionStatusUseCase := suggestion.NewGetStatusUseCase(processingTracker)
		clearSuggestionsUseCase := suggestion.NewClearSuggestionsUseCase(processingTracker)

		// Controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		)
		obligationController = controller.NewObligationController(
			listObligationsUseCase,
			createObligationUseCase,
			getObligationUseCase,
			updateObligationUseCase,
			completeObligationUseCase,
			deleteObligationUseCase,
		)
		clientController = controller.NewClientController(
			listClientsUseCase,
			createClientUseCase,
			updateClientUseCase,
			deleteClientUseCase,
		)
		responsibleController = controller.NewResponsibleController(
			listResponsiblesUseCase,
			createResponsibleUseCase,
			updateResponsibleUseCase,
			deleteResponsibleUseCase,
		)
		taxController = controller.NewTaxController(
			listTaxesUseCase,
			createTaxUseCase,
			updateTaxUseCase,
			deleteTaxUseCase,
			generateObligationsUseCase,
		)
		installmentController = controller.NewInstallmentController(
			listPlansUseCase,
			createPlanUseCase,
			advanceInstallmentUseCase,
			changePlanStatusUseCase,
			deletePlanUseCase,
		)
		dashboardController = controller.NewDashboardController(
			statisticsUseCase,
			upcomingUseCase,
			kindSummaryUseCase,
			calendarUseCase,
		)
		historyController = controller.NewHistoryController(listChangesUseCase)
		suggestionController = controller.NewSuggestionController(
			startSuggestionUseCase,
			suggestionStatusUseCase,
			clearSuggestionsUseCase,
		)

		// Middleware
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		// Email delivery worker
		if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
			renderer, err := templates.NewRenderer()
			if err != nil {
				slog.Error("Failed to load email templates", "error", err)
				os.Exit(1)
			}
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker := email.NewWorker(reminderQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
			go emailWorker.Start(workerCtx)
			slog.Info("Email worker started")
		} else {
			slog.Warn("Email worker disabled, reminder jobs will stay queued")
		}

		// Recurrence and reminder scheduler
		if cfg.Scheduler.Enabled {
			schedulerWorker := scheduler.NewWorker(
				obligationRepo,
				responsibleRepo,
				reminderQueueRepo,
				reminderService,
				generateObligationsUseCase,
				holidayCalendar,
				scheduler.Config{
					ScanInterval:       cfg.Scheduler.ScanInterval,
					ReminderWindowDays: cfg.Scheduler.ReminderWindowDays,
					OverdueGraceDays:   cfg.Scheduler.OverdueGraceDays,
					FallbackEmail:      cfg.Scheduler.FallbackEmail,
					FallbackName:       cfg.Scheduler.FallbackName,
				},
			)
			go schedulerWorker.Start(workerCtx)
		}

		slog.Info("API systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		obligationController,
		clientController,
		responsibleController,
		taxController,
		installmentController,
		dashboardController,
		historyController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
