package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func maintenanceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"maintenance_id", "equipment_id", "scheduled_at", "status",
		"attrs", "created_by", "created_at", "updated_at",
	})
}

func TestMaintenanceReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaintenanceReadRepository(db)

	maintenanceID := uuid.New()
	equipmentID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM maintenances").
		WillReturnRows(maintenanceRows().
			AddRow(maintenanceID, equipmentID, now, models.StatusPending, []byte(`{}`), "admin", now, now))

	maintenances, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, maintenances, 1)
	assert.Equal(t, maintenanceID, maintenances[0].MaintenanceID)
	assert.Equal(t, models.StatusPending, maintenances[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceReadRepository_ListActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaintenanceReadRepository(db)

	maintenanceID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM maintenances WHERE status <>").
		WithArgs(models.StatusCompleted).
		WillReturnRows(maintenanceRows().
			AddRow(maintenanceID, uuid.New(), now, models.StatusPending, []byte(`{}`), "admin", now, now))

	maintenances, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, maintenances, 1)
	assert.Equal(t, maintenanceID, maintenances[0].MaintenanceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceReadRepository_ListActive_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaintenanceReadRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM maintenances WHERE status <>").
		WillReturnError(errors.New("db error"))

	maintenances, err := repo.ListActive(context.Background())
	assert.Error(t, err)
	assert.Nil(t, maintenances)
}

func TestMaintenanceReadRepository_CountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaintenanceReadRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM maintenances").
		WithArgs(models.StatusPending, models.StatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"total", "pending", "completed"}).
			AddRow(10, 4, 6))

	stats, err := repo.CountByStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &models.MaintenanceStats{Total: 10, Pending: 4, Completed: 6}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMaintenanceWriteRepository(db)

	now := time.Now()
	maintenance := models.MaintenanceDB{
		MaintenanceID: uuid.New(),
		EquipmentID:   uuid.New(),
		ScheduledAt:   now.Add(24 * time.Hour),
		Status:        models.StatusPending,
		Attrs:         models.Attrs{},
		CreatedBy:     "admin",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO maintenances").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), maintenance)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
