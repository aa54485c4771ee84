package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// EquipmentReader defines read operations for equipment records.
type EquipmentReader interface {
	List(ctx context.Context) ([]models.EquipmentDB, error)
}

// EquipmentWriter defines write operations for equipment records.
type EquipmentWriter interface {
	Save(ctx context.Context, equipment models.EquipmentDB) error
}

// EquipmentService handles equipment records.
type EquipmentService struct {
	readRepo  EquipmentReader
	writeRepo EquipmentWriter
	now       func() time.Time
}

// NewEquipmentService creates a new EquipmentService.
func NewEquipmentService(readRepo EquipmentReader, writeRepo EquipmentWriter) *EquipmentService {
	return &EquipmentService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		now:       time.Now,
	}
}

// List returns all equipment records.
func (s *EquipmentService) List(ctx context.Context) ([]models.EquipmentDB, error) {
	equipment, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list equipment", "err", err)
		return nil, err
	}
	return equipment, nil
}

// Create stamps metadata on the equipment record and persists it.
func (s *EquipmentService) Create(ctx context.Context, equipment models.EquipmentDB, createdBy string) (*models.EquipmentDB, error) {
	now := s.now().UTC()
	equipment.EquipmentID = uuid.New()
	equipment.CreatedBy = createdBy
	equipment.CreatedAt = now
	equipment.UpdatedAt = now
	if equipment.Attrs == nil {
		equipment.Attrs = models.Attrs{}
	}

	if err := s.writeRepo.Save(ctx, equipment); err != nil {
		logger.Log.Errorw("failed to save equipment", "err", err)
		return nil, err
	}

	return &equipment, nil
}
