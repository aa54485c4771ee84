package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

type EquipmentReadRepository struct {
	db *sqlx.DB
}

func NewEquipmentReadRepository(db *sqlx.DB) *EquipmentReadRepository {
	return &EquipmentReadRepository{db: db}
}

// List returns all equipment records ordered by creation time.
func (r *EquipmentReadRepository) List(ctx context.Context) ([]models.EquipmentDB, error) {
	const query = `
		SELECT equipment_id, name, attrs, created_by, created_at, updated_at
		FROM equipment
		ORDER BY created_at
	`

	var equipment []models.EquipmentDB
	err := r.db.SelectContext(ctx, &equipment, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(equipment),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return equipment, nil
}

// Count returns the total number of equipment records.
func (r *EquipmentReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM equipment`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return total, nil
}

type EquipmentWriteRepository struct {
	db *sqlx.DB
}

func NewEquipmentWriteRepository(db *sqlx.DB) *EquipmentWriteRepository {
	return &EquipmentWriteRepository{db: db}
}

// Save inserts a new equipment record.
func (r *EquipmentWriteRepository) Save(ctx context.Context, equipment models.EquipmentDB) error {
	const query = `
		INSERT INTO equipment (equipment_id, name, attrs, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{
		equipment.EquipmentID, equipment.Name, equipment.Attrs,
		equipment.CreatedBy, equipment.CreatedAt, equipment.UpdatedAt,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
