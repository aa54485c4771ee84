package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// EquipmentCounter counts equipment records.
type EquipmentCounter interface {
	Count(ctx context.Context) (int64, error)
}

// MaintenanceCounter aggregates maintenance counters.
type MaintenanceCounter interface {
	CountByStatus(ctx context.Context) (*models.MaintenanceStats, error)
}

// ReportCache caches the aggregate report.
type ReportCache interface {
	Get(ctx context.Context) (*models.Report, error)
	Set(ctx context.Context, report models.Report) error
}

// ReportService builds the aggregate equipment/maintenance report with a
// cache-aside Redis layer. The generated_at/generated_by stamps are always
// fresh, only the counters are cached.
type ReportService struct {
	equipment    EquipmentCounter
	maintenances MaintenanceCounter
	cache        ReportCache
	now          func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(equipment EquipmentCounter, maintenances MaintenanceCounter, cache ReportCache) *ReportService {
	return &ReportService{
		equipment:    equipment,
		maintenances: maintenances,
		cache:        cache,
		now:          time.Now,
	}
}

// Generate returns the aggregate report, stamped for the requesting user.
func (s *ReportService) Generate(ctx context.Context, generatedBy string) (*models.Report, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.Log.Errorw("report cache read failed", "err", err)
		} else if cached != nil {
			cached.GeneratedAt = s.now().UTC()
			cached.GeneratedBy = generatedBy
			return cached, nil
		}
	}

	equipmentTotal, err := s.equipment.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count equipment", "err", err)
		return nil, err
	}

	maintenanceStats, err := s.maintenances.CountByStatus(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count maintenances", "err", err)
		return nil, err
	}

	report := models.Report{
		Equipment:    models.EquipmentStats{Total: equipmentTotal},
		Maintenances: *maintenanceStats,
		GeneratedAt:  s.now().UTC(),
		GeneratedBy:  generatedBy,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			logger.Log.Errorw("report cache write failed", "err", err)
		}
	}

	return &report, nil
}
