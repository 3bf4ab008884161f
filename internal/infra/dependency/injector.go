// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habitflow/backend/config"
	"github.com/habitflow/backend/internal/application/adapter"
	"github.com/habitflow/backend/internal/application/usecase/auth"
	"github.com/habitflow/backend/internal/application/usecase/completion"
	"github.com/habitflow/backend/internal/application/usecase/dashboard"
	"github.com/habitflow/backend/internal/application/usecase/goal"
	"github.com/habitflow/backend/internal/application/usecase/habit"
	"github.com/habitflow/backend/internal/application/usecase/notification"
	"github.com/habitflow/backend/internal/application/usecase/settings"
	"github.com/habitflow/backend/internal/application/usecase/suggestion"
	"github.com/habitflow/backend/internal/infra/server/router"
	"github.com/habitflow/backend/internal/integration/adapters"
	"github.com/habitflow/backend/internal/integration/email"
	"github.com/habitflow/backend/internal/integration/email/templates"
	"github.com/habitflow/backend/internal/integration/entrypoint/controller"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
	"github.com/habitflow/backend/internal/integration/persistence"
	"github.com/habitflow/backend/internal/integration/push"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Router            *router.Router
	EmailWorker       *email.Worker
	ReminderScheduler *email.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	completionRepo := persistence.NewCompletionRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	subscriptionRepo := persistence.NewPushSubscriptionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	geminiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	var pushSender adapter.PushSender
	if cfg.Push.Enabled {
		pushSender = push.NewHTTPSender()
	} else {
		pushSender = push.NewMockPushSender()
	}

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, settingsRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, habitRepo, completionRepo, settingsRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, habitRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, completionRepo, settingsRepo)
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo, goalRepo)
	getHabitUseCase := habit.NewGetHabitUseCase(habitRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)

	// Create completion use cases
	toggleCompletionUseCase := completion.NewToggleCompletionUseCase(habitRepo, completionRepo, settingsRepo)
	listCompletionsUseCase := completion.NewListCompletionsUseCase(habitRepo, completionRepo, settingsRepo)

	// Create dashboard use case
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(goalRepo, habitRepo, completionRepo, settingsRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create notification use cases
	subscribeUseCase := notification.NewSubscribeUseCase(subscriptionRepo)
	sendUseCase := notification.NewSendUseCase(subscriptionRepo, settingsRepo, pushSender)
	enqueueRemindersUseCase := notification.NewEnqueueRemindersUseCase(
		settingsRepo,
		userRepo,
		goalRepo,
		habitRepo,
		completionRepo,
		emailService,
		cfg.Email.AppBaseURL,
	)
	reminderScheduler := email.NewScheduler(enqueueRemindersUseCase)

	// Create suggestion use case
	suggestHabitsUseCase := suggestion.NewSuggestHabitsUseCase(goalRepo, habitRepo, geminiService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		getHabitUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
	)

	completionController := controller.NewCompletionController(
		toggleCompletionUseCase,
		listCompletionsUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
	)

	notificationController := controller.NewNotificationController(
		subscribeUseCase,
		sendUseCase,
	)

	suggestionController := controller.NewSuggestionController(suggestHabitsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter, toggleRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "login", 1000, 1*time.Minute)
		toggleRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "toggle", 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient, "login")
		toggleRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "toggle", 60, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		goalController,
		habitController,
		completionController,
		dashboardController,
		settingsController,
		notificationController,
		suggestionController,
		loginRateLimiter,
		toggleRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		EmailWorker:       emailWorker,
		ReminderScheduler: reminderScheduler,
	}, nil
}
