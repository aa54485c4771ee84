package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// NotificationLister defines the interface that the notification service must implement.
type NotificationLister interface {
	List(ctx context.Context) ([]models.Notification, error)
}

// ListNotificationsResponse represents the notification listing
// swagger:model ListNotificationsResponse
type ListNotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int                   `json:"total"`
}

// NotificationErrorResponse represents an error response for the notifications endpoint
// swagger:model NotificationErrorResponse
type NotificationErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListNotificationsHandler returns an HTTP handler for maintenance alerts.
// @Summary List notifications
// @Description Returns overdue and upcoming maintenance alerts
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.ListNotificationsResponse "Notification list"
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.NotificationErrorResponse "Internal server error"
// @Router /notifications [get]
// @Security BearerAuth
func NewListNotificationsHandler(svc NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			return
		}
		if notifications == nil {
			notifications = []models.Notification{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListNotificationsResponse{
			Notifications: notifications,
			Total:         len(notifications),
		})
	}
}
