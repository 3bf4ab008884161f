// Package dto defines data transfer objects for API requests and responses.
package dto

// SubscribeRequest represents the request body for push subscription.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	P256DH   string `json:"p256dh"`
	Auth     string `json:"auth"`
}

// SubscribeResponse represents the response for push subscription.
type SubscribeResponse struct {
	ID       string `json:"id"`
	Endpoint string `json:"endpoint"`
}

// SendNotificationRequest represents the request body for sending a
// push notification.
type SendNotificationRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"max=500"`
	URL   string `json:"url" binding:"omitempty,url"`
}

// SendNotificationResponse represents the response for sending a push
// notification.
type SendNotificationResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
