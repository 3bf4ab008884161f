// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/backend/internal/application/usecase/notification"
	domainerror "github.com/habitflow/backend/internal/domain/error"
	"github.com/habitflow/backend/internal/integration/entrypoint/dto"
	"github.com/habitflow/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles push notification endpoints.
type NotificationController struct {
	subscribeUseCase *notification.SubscribeUseCase
	sendUseCase      *notification.SendUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	subscribeUseCase *notification.SubscribeUseCase,
	sendUseCase *notification.SendUseCase,
) *NotificationController {
	return &NotificationController{
		subscribeUseCase: subscribeUseCase,
		sendUseCase:      sendUseCase,
	}
}

// Subscribe handles POST /notifications/subscribe requests.
func (c *NotificationController) Subscribe(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSubscription),
		})
		return
	}

	input := notification.SubscribeInput{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256DH:   req.P256DH,
		Auth:     req.Auth,
	}

	output, err := c.subscribeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubscribeResponse{
		ID:       output.Subscription.ID.String(),
		Endpoint: output.Subscription.Endpoint,
	})
}

// Send handles POST /notifications/send requests.
func (c *NotificationController) Send(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SendNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSubscription),
		})
		return
	}

	input := notification.SendInput{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
		URL:    req.URL,
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SendNotificationResponse{
		Sent:   output.Sent,
		Failed: output.Failed,
	})
}

// handleNotificationError handles notification errors and returns
// appropriate HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notificationErr *domainerror.NotificationError
	if errors.As(err, &notificationErr) {
		statusCode := getStatusCodeForNotificationError(notificationErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: notificationErr.Message,
			Code:  string(notificationErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForNotificationError maps notification error codes to
// HTTP status codes.
func getStatusCodeForNotificationError(code domainerror.NotificationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSubscription,
		domainerror.ErrCodeNotificationsDisabled:
		return http.StatusBadRequest
	case domainerror.ErrCodeNoSubscriptions:
		return http.StatusNotFound
	case domainerror.ErrCodePushSendFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
