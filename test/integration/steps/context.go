// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fiscal-tracker/backend/internal/application/usecase/auth"
	"github.com/fiscal-tracker/backend/internal/application/usecase/client"
	"github.com/fiscal-tracker/backend/internal/application/usecase/dashboard"
	"github.com/fiscal-tracker/backend/internal/application/usecase/history"
	"github.com/fiscal-tracker/backend/internal/application/usecase/installment"
	"github.com/fiscal-tracker/backend/internal/application/usecase/obligation"
	"github.com/fiscal-tracker/backend/internal/application/usecase/responsible"
	"github.com/fiscal-tracker/backend/internal/application/usecase/suggestion"
	"github.com/fiscal-tracker/backend/internal/application/usecase/tax"
	"github.com/fiscal-tracker/backend/internal/infra/server/router"
	"github.com/fiscal-tracker/backend/internal/integration/adapters"
	"github.com/fiscal-tracker/backend/internal/integration/email"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/fiscal-tracker/backend/internal/integration/persistence"
	"github.com/fiscal-tracker/backend/internal/integration/persistence/model"
	"github.com/fiscal-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext carries per-scenario state: request building, the last
// response, and the IDs of seeded or created records.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string
	resetToken   string
	expiredToken string

	currentUserID        uuid.UUID
	currentClientID      uuid.UUID
	currentResponsibleID uuid.UUID
	currentObligationID  uuid.UUID
	currentTaxID         uuid.UUID
	currentPlanID        uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverOnce sync.Once
var portOnce sync.Once
var testDB *mock.Db
var testServerPort int

func initializePort() {
	portOnce.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("fiscal_tracker", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"clients":               &model.ClientModel{},
			"responsibles":          &model.ResponsibleModel{},
			"obligations":           &model.ObligationModel{},
			"taxes":                 &model.TaxModel{},
			"installment_plans":     &model.InstallmentPlanModel{},
			"change_records":        &model.ChangeRecordModel{},
			"reminder_queue":        &model.ReminderQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Registry setup steps
	ctx.Given(`^a client named "([^"]*)" exists$`, test.aClientNamedExists)
	ctx.Given(`^a responsible named "([^"]*)" exists$`, test.aResponsibleNamedExists)

	// Obligation setup steps
	ctx.Given(`^an obligation "([^"]*)" of kind "([^"]*)" is due in (-?\d+) days$`, test.anObligationOfKindIsDueInDays)
	ctx.Given(`^a completed obligation "([^"]*)" of kind "([^"]*)" exists$`, test.aCompletedObligationOfKindExists)
	ctx.Given(`^the obligation is assigned to the client$`, test.theObligationIsAssignedToTheClient)

	// Tax template setup steps
	ctx.Given(`^a monthly tax "([^"]*)" with code "([^"]*)" due on day (\d+) exists$`, test.aMonthlyTaxWithCodeDueOnDayExists)
	ctx.Given(`^an inactive tax "([^"]*)" with code "([^"]*)" exists$`, test.anInactiveTaxWithCodeExists)

	// Installment plan setup steps
	ctx.Given(`^an installment plan "([^"]*)" of "([^"]*)" in (\d+) installments exists$`, test.anInstallmentPlanOfInInstallmentsExists)
	ctx.Given(`^the installment plan is "([^"]*)"$`, test.theInstallmentPlanIs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentClientID = uuid.Nil
	t.currentResponsibleID = uuid.Nil
	t.currentObligationID = uuid.Nil
	t.currentTaxID = uuid.Nil
	t.currentPlanID = uuid.Nil

	if t.db != nil {
		_ = t.db.Reset()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

// startServer boots the full API once, wired against the in-memory
// database, miniredis, and the mock suggestion service.
func (t *testContext) startServer() {
	serverOnce.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			redisClient := mock.NewRedis()

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			clientRepo := persistence.NewClientRepository(testDB.DbConn)
			responsibleRepo := persistence.NewResponsibleRepository(testDB.DbConn)
			obligationRepo := persistence.NewObligationRepository(testDB.DbConn)
			taxRepo := persistence.NewTaxRepository(testDB.DbConn)
			installmentRepo := persistence.NewInstallmentRepository(testDB.DbConn)
			historyRepo := persistence.NewHistoryRepository(testDB.DbConn)
			reminderQueueRepo := persistence.NewReminderQueueRepository(testDB.DbConn)

			// Adapters and services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			holidayCalendar := adapters.NewBrazilianHolidayCalendar(redisClient, slog.Default())
			reminderService := email.NewService(reminderQueueRepo, "http://localhost:5173")
			suggestionService := mock.NewSuggestionService()
			processingTracker := suggestion.NewInMemoryProcessingTracker()

			// Auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, reminderService, "http://localhost:5173")
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

			// Installment plan use cases
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

			// History and suggestion use cases
			listChangesUseCase := history.NewListChangesUseCase(historyRepo)
			startSuggestionUseCase := suggestion.NewStartSuggestionUseCase(suggestionService, processingTracker)
			getStatusUseCase := suggestion.NewGetStatusUseCase(processingTracker)
			clearSuggestionsUseCase := suggestion.NewClearSuggestionsUseCase(processingTracker)

			// Controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return redisClient != nil },
			)
			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)
			obligationController := controller.NewObligationController(
				listObligationsUseCase,
				createObligationUseCase,
				getObligationUseCase,
				updateObligationUseCase,
				completeObligationUseCase,
				deleteObligationUseCase,
			)
			clientController := controller.NewClientController(
				listClientsUseCase,
				createClientUseCase,
				updateClientUseCase,
				deleteClientUseCase,
			)
			responsibleController := controller.NewResponsibleController(
				listResponsiblesUseCase,
				createResponsibleUseCase,
				updateResponsibleUseCase,
				deleteResponsibleUseCase,
			)
			taxController := controller.NewTaxController(
				listTaxesUseCase,
				createTaxUseCase,
				updateTaxUseCase,
				deleteTaxUseCase,
				generateObligationsUseCase,
			)
			installmentController := controller.NewInstallmentController(
				listPlansUseCase,
				createPlanUseCase,
				advanceInstallmentUseCase,
				changePlanStatusUseCase,
				deletePlanUseCase,
			)
			dashboardController := controller.NewDashboardController(
				statisticsUseCase,
				upcomingUseCase,
				kindSummaryUseCase,
				calendarUseCase,
			)
			historyController := controller.NewHistoryController(listChangesUseCase)
			suggestionController := controller.NewSuggestionController(
				startSuggestionUseCase,
				getStatusUseCase,
				clearSuggestionsUseCase,
			)

			// Middleware. The rate limiter window is widened so scenarios
			// never trip it by accident.
			loginRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, 1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to accept requests
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
