// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habitflow/backend/internal/integration/entrypoint/controller"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	goalController         *controller.GoalController
	habitController        *controller.HabitController
	completionController   *controller.CompletionController
	dashboardController    *controller.DashboardController
	settingsController     *controller.SettingsController
	notificationController *controller.NotificationController
	suggestionController   *controller.SuggestionController
	loginRateLimiter       *middleware.RateLimiter
	toggleRateLimiter      *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	goalController *controller.GoalController,
	habitController *controller.HabitController,
	completionController *controller.CompletionController,
	dashboardController *controller.DashboardController,
	settingsController *controller.SettingsController,
	notificationController *controller.NotificationController,
	suggestionController *controller.SuggestionController,
	loginRateLimiter *middleware.RateLimiter,
	toggleRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		goalController:         goalController,
		habitController:        habitController,
		completionController:   completionController,
		dashboardController:    dashboardController,
		settingsController:     settingsController,
		notificationController: notificationController,
		suggestionController:   suggestionController,
		loginRateLimiter:       loginRateLimiter,
		toggleRateLimiter:      toggleRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Habit routes (require authentication). Toggle is rate limited
		// because it is the hottest write path.
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.GET("/:id", r.habitController.Get)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)

				if r.completionController != nil {
					if r.toggleRateLimiter != nil {
						habits.POST("/:id/toggle", r.toggleRateLimiter.Middleware(), r.completionController.Toggle)
					} else {
						habits.POST("/:id/toggle", r.completionController.Toggle)
					}
					habits.GET("/:id/completions", r.completionController.List)
				}
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Get)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("", r.settingsController.Get)
				settings.PATCH("", r.settingsController.Update)
			}
		}

		// Notification routes (require authentication)
		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.POST("/subscribe", r.notificationController.Subscribe)
				notifications.POST("/send", r.notificationController.Send)
			}
		}

		// AI suggestion routes (require authentication)
		if r.suggestionController != nil && r.authMiddleware != nil {
			ai := v1.Group("/ai")
			ai.Use(r.authMiddleware.Authenticate())
			{
				ai.POST("/habit-suggestions", r.suggestionController.Suggest)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
