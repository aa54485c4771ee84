package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// DefaultLookaheadWindow is how far ahead upcoming maintenances are reported.
const DefaultLookaheadWindow = 7 * 24 * time.Hour

// MaintenanceLister defines read access to non-completed maintenance records.
type MaintenanceLister interface {
	ListActive(ctx context.Context) ([]models.MaintenanceDB, error)
}

// NotificationService classifies maintenance records into overdue and
// upcoming alerts relative to a reference instant.
type NotificationService struct {
	reader MaintenanceLister
	window time.Duration
	now    func() time.Time
}

// NotificationOpt configures a NotificationService.
type NotificationOpt func(*NotificationService)

// WithLookaheadWindow overrides the upcoming-maintenance window.
func WithLookaheadWindow(window time.Duration) NotificationOpt {
	return func(svc *NotificationService) { svc.window = window }
}

// WithNow overrides the clock, used in tests.
func WithNow(now func() time.Time) NotificationOpt {
	return func(svc *NotificationService) { svc.now = now }
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(reader MaintenanceLister, opts ...NotificationOpt) *NotificationService {
	svc := &NotificationService{
		reader: reader,
		window: DefaultLookaheadWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List loads the active maintenance records and classifies them.
func (svc *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	maintenances, err := svc.reader.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active maintenances", "err", err)
		return nil, err
	}

	return Classify(svc.now(), maintenances, svc.window), nil
}

// Classify partitions maintenance records into overdue and upcoming
// notifications relative to now. Completed records never produce a
// notification. All overdue notifications precede all upcoming ones, and
// within each group the input order is preserved.
func Classify(now time.Time, maintenances []models.MaintenanceDB, window time.Duration) []models.Notification {
	deadline := now.Add(window)

	var overdue, upcoming []models.Notification
	for _, m := range maintenances {
		if m.Status == models.StatusCompleted {
			continue
		}

		switch {
		case m.ScheduledAt.Before(now):
			overdue = append(overdue, models.Notification{
				ID:       uuid.New().String(),
				Kind:     models.NotificationOverdue,
				Title:    "Overdue Maintenance",
				Message:  fmt.Sprintf("Maintenance %s is overdue", m.MaintenanceID),
				DueAt:    m.ScheduledAt,
				Priority: models.PriorityHigh,
			})
		case !m.ScheduledAt.After(deadline):
			upcoming = append(upcoming, models.Notification{
				ID:       uuid.New().String(),
				Kind:     models.NotificationUpcoming,
				Title:    "Upcoming Maintenance",
				Message:  fmt.Sprintf("Maintenance %s is due soon", m.MaintenanceID),
				DueAt:    m.ScheduledAt,
				Priority: models.PriorityMedium,
			})
		}
	}

	return append(overdue, upcoming...)
}
