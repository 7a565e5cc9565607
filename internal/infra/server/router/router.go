// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/fiscal-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
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
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	obligationController *controller.ObligationController,
	clientController *controller.ClientController,
	responsibleController *controller.ResponsibleController,
	taxController *controller.TaxController,
	installmentController *controller.InstallmentController,
	dashboardController *controller.DashboardController,
	historyController *controller.HistoryController,
	suggestionController *controller.SuggestionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		obligationController:  obligationController,
		clientController:      clientController,
		responsibleController: responsibleController,
		taxController:         taxController,
		installmentController: installmentController,
		dashboardController:   dashboardController,
		historyController:     historyController,
		suggestionController:  suggestionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.obligationController != nil && r.authMiddleware != nil {
			obligations := v1.Group("/obligations")
			obligations.Use(r.authMiddleware.Authenticate())
			{
				obligations.GET("", r.obligationController.List)
				obligations.POST("", r.obligationController.Create)
				obligations.GET("/:id", r.obligationController.Get)
				obligations.PATCH("/:id", r.obligationController.Update)
				obligations.POST("/:id/complete", r.obligationController.Complete)
				obligations.DELETE("/:id", r.obligationController.Delete)
			}
		}

		if r.clientController != nil && r.authMiddleware != nil {
			clients := v1.Group("/clients")
			clients.Use(r.authMiddleware.Authenticate())
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.PATCH("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)
			}
		}

		if r.responsibleController != nil && r.authMiddleware != nil {
			responsibles := v1.Group("/responsibles")
			responsibles.Use(r.authMiddleware.Authenticate())
			{
				responsibles.GET("", r.responsibleController.List)
				responsibles.POST("", r.responsibleController.Create)
				responsibles.PATCH("/:id", r.responsibleController.Update)
				responsibles.DELETE("/:id", r.responsibleController.Delete)
			}
		}

		if r.taxController != nil && r.authMiddleware != nil {
			taxes := v1.Group("/taxes")
			taxes.Use(r.authMiddleware.Authenticate())
			{
				taxes.GET("", r.taxController.List)
				taxes.POST("", r.taxController.Create)
				taxes.PATCH("/:id", r.taxController.Update)
				taxes.DELETE("/:id", r.taxController.Delete)
				taxes.POST("/generate", r.taxController.Generate)
			}
		}

		if r.installmentController != nil && r.authMiddleware != nil {
			installments := v1.Group("/installments")
			installments.Use(r.authMiddleware.Authenticate())
			{
				installments.GET("", r.installmentController.List)
				installments.POST("", r.installmentController.Create)
				installments.POST("/:id/advance", r.installmentController.Advance)
				installments.PATCH("/:id/status", r.installmentController.ChangeStatus)
				installments.DELETE("/:id", r.installmentController.Delete)
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/statistics", r.dashboardController.Statistics)
				dashboard.GET("/upcoming", r.dashboardController.Upcoming)
				dashboard.GET("/kinds", r.dashboardController.KindSummary)
				dashboard.GET("/calendar", r.dashboardController.Calendar)
			}
		}

		if r.historyController != nil && r.authMiddleware != nil {
			history := v1.Group("/history")
			history.Use(r.authMiddleware.Authenticate())
			{
				history.GET("", r.historyController.List)
			}
		}

		if r.suggestionController != nil && r.authMiddleware != nil {
			suggestions := v1.Group("/suggestions")
			suggestions.Use(r.authMiddleware.Authenticate())
			{
				suggestions.POST("", r.suggestionController.Start)
				suggestions.GET("/status", r.suggestionController.Status)
				suggestions.DELETE("", r.suggestionController.Clear)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
