package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// MaintenanceReader defines read operations for maintenance records.
type MaintenanceReader interface {
	List(ctx context.Context) ([]models.MaintenanceDB, error)
}

// MaintenanceWriter defines write operations for maintenance records.
type MaintenanceWriter interface {
	Save(ctx context.Context, maintenance models.MaintenanceDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// maintenanceEvent is the payload published on maintenance creation.
type maintenanceEvent struct {
	Event       string    `json:"event"`
	Maintenance any       `json:"maintenance"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// MaintenanceService handles maintenance records and Kafka publishing.
type MaintenanceService struct {
	readRepo    MaintenanceReader
	writeRepo   MaintenanceWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(readRepo MaintenanceReader, writeRepo MaintenanceWriter, kafkaWriter KafkaWriter) *MaintenanceService {
	return &MaintenanceService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// List returns all maintenance records.
func (s *MaintenanceService) List(ctx context.Context) ([]models.MaintenanceDB, error) {
	maintenances, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list maintenances", "err", err)
		return nil, err
	}
	return maintenances, nil
}

// Create stamps metadata on the maintenance record, persists it and
// publishes a creation event.
func (s *MaintenanceService) Create(ctx context.Context, maintenance models.MaintenanceDB, createdBy string) (*models.MaintenanceDB, error) {
	now := s.now().UTC()
	maintenance.MaintenanceID = uuid.New()
	maintenance.CreatedBy = createdBy
	maintenance.CreatedAt = now
	maintenance.UpdatedAt = now
	if maintenance.Status == "" {
		maintenance.Status = models.StatusPending
	}
	if maintenance.Attrs == nil {
		maintenance.Attrs = models.Attrs{}
	}

	if err := s.writeRepo.Save(ctx, maintenance); err != nil {
		logger.Log.Errorw("failed to save maintenance", "err", err)
		return nil, err
	}

	s.publishEvent(ctx, "maintenance.created", maintenance)

	return &maintenance, nil
}

// publishEvent publishes a maintenance lifecycle event to Kafka.
// Publishing failures are logged, never surfaced to the request.
func (s *MaintenanceService) publishEvent(ctx context.Context, event string, maintenance models.MaintenanceDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "maintenance_id", maintenance.MaintenanceID)
		return
	}

	data, err := json.Marshal(maintenanceEvent{
		Event:       event,
		Maintenance: maintenance,
		OccurredAt:  s.now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal maintenance event", "maintenance_id", maintenance.MaintenanceID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(maintenance.MaintenanceID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish maintenance event", "maintenance_id", maintenance.MaintenanceID, "error", err)
	} else {
		logger.Log.Infow("maintenance event published", "event", event, "maintenance_id", maintenance.MaintenanceID)
	}
}
