package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

type MaintenanceReadRepository struct {
	db *sqlx.DB
}

func NewMaintenanceReadRepository(db *sqlx.DB) *MaintenanceReadRepository {
	return &MaintenanceReadRepository{db: db}
}

// List returns all maintenance records ordered by creation time.
func (r *MaintenanceReadRepository) List(ctx context.Context) ([]models.MaintenanceDB, error) {
	const query = `
		SELECT maintenance_id, equipment_id, scheduled_at, status, attrs, created_by, created_at, updated_at
		FROM maintenances
		ORDER BY created_at
	`

	var maintenances []models.MaintenanceDB
	err := r.db.SelectContext(ctx, &maintenances, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(maintenances),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return maintenances, nil
}

// ListActive returns maintenance records that are not completed,
// ordered by creation time.
func (r *MaintenanceReadRepository) ListActive(ctx context.Context) ([]models.MaintenanceDB, error) {
	const query = `
		SELECT maintenance_id, equipment_id, scheduled_at, status, attrs, created_by, created_at, updated_at
		FROM maintenances
		WHERE status <> $1
		ORDER BY created_at
	`

	var maintenances []models.MaintenanceDB
	err := r.db.SelectContext(ctx, &maintenances, query, models.StatusCompleted)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(maintenances),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return maintenances, nil
}

// CountByStatus returns aggregate maintenance counters in a single query.
func (r *MaintenanceReadRepository) CountByStatus(ctx context.Context) (*models.MaintenanceStats, error) {
	const query = `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = $1) AS pending,
		       COUNT(*) FILTER (WHERE status = $2) AS completed
		FROM maintenances
	`

	var stats models.MaintenanceStats
	err := r.db.GetContext(ctx, &stats, query, models.StatusPending, models.StatusCompleted)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stats, nil
}

type MaintenanceWriteRepository struct {
	db *sqlx.DB
}

func NewMaintenanceWriteRepository(db *sqlx.DB) *MaintenanceWriteRepository {
	return &MaintenanceWriteRepository{db: db}
}

// Save inserts a new maintenance record.
func (r *MaintenanceWriteRepository) Save(ctx context.Context, maintenance models.MaintenanceDB) error {
	const query = `
		INSERT INTO maintenances (maintenance_id, equipment_id, scheduled_at, status, attrs, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{
		maintenance.MaintenanceID, maintenance.EquipmentID, maintenance.ScheduledAt,
		maintenance.Status, maintenance.Attrs, maintenance.CreatedBy,
		maintenance.CreatedAt, maintenance.UpdatedAt,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
