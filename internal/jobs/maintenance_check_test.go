package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMaintenanceCheckJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	overdue := models.Notification{
		ID:       uuid.New().String(),
		Kind:     models.NotificationOverdue,
		Title:    "Overdue Maintenance",
		DueAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Priority: models.PriorityHigh,
	}
	upcoming := models.Notification{
		ID:       uuid.New().String(),
		Kind:     models.NotificationUpcoming,
		Title:    "Upcoming Maintenance",
		DueAt:    time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Priority: models.PriorityMedium,
	}

	t.Run("publishes overdue alerts only", func(t *testing.T) {
		mockLister := NewMockNotificationLister(ctrl)
		mockWriter := NewMockAlertWriter(ctrl)

		mockLister.EXPECT().List(gomock.Any()).Return([]models.Notification{overdue, upcoming}, nil)

		var published []kafka.Message
		mockWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, msgs ...kafka.Message) error {
				published = msgs
				return nil
			})

		NewMaintenanceCheckJob(mockLister, mockWriter).Run()

		assert.Len(t, published, 1)
		assert.Equal(t, overdue.ID, string(published[0].Key))
	})

	t.Run("no overdue alerts publishes nothing", func(t *testing.T) {
		mockLister := NewMockNotificationLister(ctrl)
		mockWriter := NewMockAlertWriter(ctrl)

		mockLister.EXPECT().List(gomock.Any()).Return([]models.Notification{upcoming}, nil)

		NewMaintenanceCheckJob(mockLister, mockWriter).Run()
	})

	t.Run("classifier failure is swallowed", func(t *testing.T) {
		mockLister := NewMockNotificationLister(ctrl)

		mockLister.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		assert.NotPanics(t, func() {
			NewMaintenanceCheckJob(mockLister, nil).Run()
		})
	})

	t.Run("nil alert writer is tolerated", func(t *testing.T) {
		mockLister := NewMockNotificationLister(ctrl)

		mockLister.EXPECT().List(gomock.Any()).Return([]models.Notification{overdue}, nil)

		assert.NotPanics(t, func() {
			NewMaintenanceCheckJob(mockLister, nil).Run()
		})
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		mockLister := NewMockNotificationLister(ctrl)
		mockWriter := NewMockAlertWriter(ctrl)

		mockLister.EXPECT().List(gomock.Any()).Return([]models.Notification{overdue}, nil)
		mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			NewMaintenanceCheckJob(mockLister, mockWriter).Run()
		})
	})
}
