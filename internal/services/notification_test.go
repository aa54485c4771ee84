package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	overdueID := uuid.New()
	upcomingID := uuid.New()

	records := []models.MaintenanceDB{
		{MaintenanceID: overdueID, ScheduledAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Status: models.StatusPending},
		{MaintenanceID: upcomingID, ScheduledAt: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), Status: models.StatusPending},
		{MaintenanceID: uuid.New(), ScheduledAt: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), Status: models.StatusPending},
		{MaintenanceID: uuid.New(), ScheduledAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Status: models.StatusCompleted},
	}

	notifications := services.Classify(now, records, window)

	assert.Len(t, notifications, 2)

	assert.Equal(t, models.NotificationOverdue, notifications[0].Kind)
	assert.Equal(t, models.PriorityHigh, notifications[0].Priority)
	assert.Contains(t, notifications[0].Message, overdueID.String())
	assert.Equal(t, records[0].ScheduledAt, notifications[0].DueAt)

	assert.Equal(t, models.NotificationUpcoming, notifications[1].Kind)
	assert.Equal(t, models.PriorityMedium, notifications[1].Priority)
	assert.Contains(t, notifications[1].Message, upcomingID.String())
	assert.Equal(t, records[1].ScheduledAt, notifications[1].DueAt)
}

func TestClassify_OrderingAndBounds(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	// Interleaved overdue/upcoming records, deliberately not date-sorted.
	records := []models.MaintenanceDB{
		{MaintenanceID: uuid.New(), ScheduledAt: now.Add(24 * time.Hour), Status: models.StatusPending},   // upcoming A
		{MaintenanceID: uuid.New(), ScheduledAt: now.Add(-24 * time.Hour), Status: models.StatusPending},  // overdue A
		{MaintenanceID: uuid.New(), ScheduledAt: now.Add(window), Status: models.StatusPending},           // upcoming B, window boundary inclusive
		{MaintenanceID: uuid.New(), ScheduledAt: now.Add(-240 * time.Hour), Status: models.StatusPending}, // overdue B
		{MaintenanceID: uuid.New(), ScheduledAt: now, Status: models.StatusPending},                       // upcoming C, now is not overdue
	}

	notifications := services.Classify(now, records, window)

	assert.Len(t, notifications, 5)

	// All overdue precede all upcoming; source order preserved within groups.
	wantMessages := []string{
		"Maintenance " + records[1].MaintenanceID.String() + " is overdue",
		"Maintenance " + records[3].MaintenanceID.String() + " is overdue",
		"Maintenance " + records[0].MaintenanceID.String() + " is due soon",
		"Maintenance " + records[2].MaintenanceID.String() + " is due soon",
		"Maintenance " + records[4].MaintenanceID.String() + " is due soon",
	}
	for i, want := range wantMessages {
		assert.Equal(t, want, notifications[i].Message)
	}
}

func TestClassify_IdempotentExceptIDs(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	records := []models.MaintenanceDB{
		{MaintenanceID: uuid.New(), ScheduledAt: now.Add(-time.Hour), Status: models.StatusPending},
		{MaintenanceID: uuid.New(), ScheduledAt: now.Add(time.Hour), Status: models.StatusPending},
	}

	first := services.Classify(now, records, window)
	second := services.Classify(now, records, window)

	assert.Len(t, second, len(first))
	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)

		a, b := first[i], second[i]
		a.ID, b.ID = "", ""
		assert.Equal(t, a, b)
	}
}

func TestNotificationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("classifies active maintenances", func(t *testing.T) {
		mockReader := services.NewMockMaintenanceLister(ctrl)
		mockReader.EXPECT().
			ListActive(gomock.Any()).
			Return([]models.MaintenanceDB{
				{MaintenanceID: uuid.New(), ScheduledAt: now.Add(-time.Hour), Status: models.StatusPending},
			}, nil)

		svc := services.NewNotificationService(mockReader, services.WithNow(func() time.Time { return now }))

		notifications, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
		assert.Equal(t, models.NotificationOverdue, notifications[0].Kind)
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		mockReader := services.NewMockMaintenanceLister(ctrl)
		mockReader.EXPECT().
			ListActive(gomock.Any()).
			Return(nil, errors.New("db error"))

		svc := services.NewNotificationService(mockReader)

		notifications, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, notifications)
	})

	t.Run("custom lookahead window", func(t *testing.T) {
		mockReader := services.NewMockMaintenanceLister(ctrl)
		mockReader.EXPECT().
			ListActive(gomock.Any()).
			Return([]models.MaintenanceDB{
				{MaintenanceID: uuid.New(), ScheduledAt: now.Add(48 * time.Hour), Status: models.StatusPending},
			}, nil)

		svc := services.NewNotificationService(mockReader,
			services.WithNow(func() time.Time { return now }),
			services.WithLookaheadWindow(24*time.Hour),
		)

		notifications, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, notifications)
	})
}
