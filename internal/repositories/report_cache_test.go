package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestReportCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewReportCacheRepository(rdb, 2*time.Second)

	report := models.Report{
		Equipment:    models.EquipmentStats{Total: 3},
		Maintenances: models.MaintenanceStats{Total: 10, Pending: 4, Completed: 6},
		GeneratedAt:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		GeneratedBy:  "admin",
	}

	t.Run("Get on empty cache returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Set and Get round-trips the report", func(t *testing.T) {
		err := repo.Set(ctx, report)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, report, *got)
	})

	t.Run("Cached report expires", func(t *testing.T) {
		err := repo.Set(ctx, report)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
