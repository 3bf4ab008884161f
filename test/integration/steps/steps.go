//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

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
	"github.com/habitflow/backend/internal/integration/entrypoint/controller"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
	"github.com/habitflow/backend/internal/integration/persistence"
	"github.com/habitflow/backend/internal/integration/persistence/model"
	"github.com/habitflow/backend/internal/integration/push"
	"github.com/habitflow/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	serverPort     int
	accessToken    string
	refreshToken   string
	resetToken     string
	expiredToken   string
	currentUserID  uuid.UUID
	currentGoalID  uuid.UUID
	currentHabitID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testPushSender *push.MockPushSender
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("habitflow", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"goals":                 &model.GoalModel{},
			"habits":                &model.HabitModel{},
			"habit_completions":     &model.HabitCompletionModel{},
			"user_settings":         &model.UserSettingsModel{},
			"push_subscriptions":    &model.PushSubscriptionModel{},
			"email_queue":           &model.EmailQueueModel{},
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
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Goal setup steps
	ctx.Given(`^a goal exists with title "([^"]*)"$`, test.aGoalExistsWithTitle)
	ctx.Given(`^an archived goal exists with title "([^"]*)"$`, test.anArchivedGoalExistsWithTitle)

	// Habit setup steps
	ctx.Given(`^a habit exists with name "([^"]*)" and frequency "([^"]*)"$`, test.aHabitExistsWithNameAndFrequency)
	ctx.Given(`^the habit was completed today$`, test.theHabitWasCompletedToday)
	ctx.Given(`^the habit was completed (\d+) days? ago$`, test.theHabitWasCompletedDaysAgo)

	// Notification setup steps
	ctx.Given(`^a push subscription exists for the user$`, test.aPushSubscriptionExistsForTheUser)
	ctx.Given(`^notifications are disabled for the user$`, test.notificationsAreDisabledForTheUser)

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

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.currentHabitID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if testPushSender != nil {
		testPushSender.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			completionRepo := persistence.NewCompletionRepository(testDB.DbConn)
			settingsRepo := persistence.NewSettingsRepository(testDB.DbConn)
			subscriptionRepo := persistence.NewPushSubscriptionRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			emailService := email.NewService(emailQueueRepo, "http://localhost:3000")
			geminiService := adapters.NewGeminiService("") // AI disabled in tests
			testPushSender = push.NewMockPushSender()

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, settingsRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, "http://localhost:3000")
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
			sendUseCase := notification.NewSendUseCase(subscriptionRepo, settingsRepo, testPushSender)

			// Create suggestion use case
			suggestHabitsUseCase := suggestion.NewSuggestHabitsUseCase(goalRepo, habitRepo, geminiService)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			userController := controller.NewUserController(deleteAccountUseCase)

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
			redisClient := mock.NewRedis()
			loginRateLimiter := middleware.NewRateLimiter(redisClient, "login")
			toggleRateLimiter := middleware.NewRateLimiter(redisClient, "toggle")
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
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

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:              userID,
		Email:           email,
		Name:            name,
		PasswordHash:    hashPassword(password),
		TermsAcceptedAt: time.Now(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "habitflow",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "habitflow",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) aGoalExistsWithTitle(title string) error {
	return t.createGoal(title, true)
}

func (t *testContext) anArchivedGoalExistsWithTitle(title string) error {
	return t.createGoal(title, false)
}

func (t *testContext) createGoal(title string, active bool) error {
	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:        goalID,
		UserID:    t.currentUserID,
		Title:     title,
		Category:  "health",
		Color:     "#10b981",
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(goalModel)
	return result.Error
}

func (t *testContext) aHabitExistsWithNameAndFrequency(name, frequency string) error {
	habitID := uuid.New()
	t.currentHabitID = habitID

	now := time.Now().UTC()
	habitModel := &model.HabitModel{
		ID:        habitID,
		UserID:    t.currentUserID,
		GoalID:    t.currentGoalID,
		Name:      name,
		Type:      "build",
		Frequency: frequency,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if frequency == "weekly" {
		weekday := int16(time.Now().UTC().Weekday())
		habitModel.Weekday = sql.NullInt16{Int16: weekday, Valid: true}
	}

	result := t.db.DbConn.Create(habitModel)
	return result.Error
}

func (t *testContext) theHabitWasCompletedToday() error {
	return t.theHabitWasCompletedDaysAgo(0)
}

func (t *testContext) theHabitWasCompletedDaysAgo(days int) error {
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)

	completionModel := &model.HabitCompletionModel{
		ID:            uuid.New(),
		UserID:        t.currentUserID,
		HabitID:       t.currentHabitID,
		CompletedDate: date,
		CreatedAt:     now,
	}

	result := t.db.DbConn.Create(completionModel)
	return result.Error
}

func (t *testContext) aPushSubscriptionExistsForTheUser() error {
	subscriptionModel := &model.PushSubscriptionModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Endpoint:  fmt.Sprintf("https://push.example.com/%s", uuid.New().String()),
		P256DH:    "test-p256dh-key",
		Auth:      "test-auth-secret",
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(subscriptionModel)
	return result.Error
}

func (t *testContext) notificationsAreDisabledForTheUser() error {
	now := time.Now().UTC()
	settingsModel := &model.UserSettingsModel{
		UserID:               t.currentUserID,
		NotificationsEnabled: false,
		ReminderTime:         "09:00",
		WeeklyReportEnabled:  true,
		Timezone:             "UTC",
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	result := t.db.DbConn.Create(settingsModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{habit_id}}", t.currentHabitID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture created resource IDs so later steps can reference them
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, hasFrequency := responseBody["frequency"]; hasFrequency {
					t.currentHabitID = id
				} else if _, hasCategory := responseBody["category"]; hasCategory {
					t.currentGoalID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
