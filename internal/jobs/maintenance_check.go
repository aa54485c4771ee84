package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// NotificationLister produces the current maintenance alerts.
type NotificationLister interface {
	List(ctx context.Context) ([]models.Notification, error)
}

// AlertWriter publishes alert messages to Kafka.
type AlertWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MaintenanceCheckJob periodically classifies maintenance records and
// publishes overdue alerts. It implements cron.Job.
type MaintenanceCheckJob struct {
	notifications NotificationLister
	alertWriter   AlertWriter
	timeout       time.Duration
}

// NewMaintenanceCheckJob creates a new MaintenanceCheckJob.
func NewMaintenanceCheckJob(notifications NotificationLister, alertWriter AlertWriter) *MaintenanceCheckJob {
	return &MaintenanceCheckJob{
		notifications: notifications,
		alertWriter:   alertWriter,
		timeout:       time.Minute,
	}
}

// Run executes one maintenance scan.
func (j *MaintenanceCheckJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	notifications, err := j.notifications.List(ctx)
	if err != nil {
		logger.Log.Errorw("maintenance check failed", "err", err)
		return
	}

	var overdue, upcoming int
	var msgs []kafka.Message
	for _, n := range notifications {
		switch n.Kind {
		case models.NotificationOverdue:
			overdue++
			data, err := json.Marshal(n)
			if err != nil {
				logger.Log.Errorw("failed to marshal alert", "notification_id", n.ID, "error", err)
				continue
			}
			msgs = append(msgs, kafka.Message{
				Key:   []byte(n.ID),
				Value: data,
			})
		case models.NotificationUpcoming:
			upcoming++
		}
	}

	if len(msgs) > 0 && j.alertWriter != nil {
		if err := j.alertWriter.WriteMessages(ctx, msgs...); err != nil {
			logger.Log.Errorw("failed to publish overdue alerts", "count", len(msgs), "error", err)
		}
	}

	logger.Log.Infow("maintenance check finished",
		"overdue", overdue,
		"upcoming", upcoming,
	)
}
