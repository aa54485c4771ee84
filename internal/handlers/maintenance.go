package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// MaintenanceLister defines the read interface that the maintenance service must implement.
type MaintenanceLister interface {
	List(ctx context.Context) ([]models.MaintenanceDB, error)
}

// MaintenanceCreator defines the write interface that the maintenance service must implement.
type MaintenanceCreator interface {
	Create(ctx context.Context, maintenance models.MaintenanceDB, createdBy string) (*models.MaintenanceDB, error)
}

// ListMaintenancesResponse represents the maintenance listing
// swagger:model ListMaintenancesResponse
type ListMaintenancesResponse struct {
	Maintenances []models.MaintenanceDB `json:"maintenances"`
	Total        int                    `json:"total"`
}

// CreateMaintenanceRequest represents the JSON body for maintenance creation
// swagger:model CreateMaintenanceRequest
type CreateMaintenanceRequest struct {
	// Equipment this maintenance belongs to
	// required: true
	EquipmentID uuid.UUID `json:"equipment_id"`

	// When the maintenance is due
	// required: true
	ScheduledAt time.Time `json:"scheduled_at"`

	// Status, defaults to "pending"
	Status string `json:"status"`

	// Arbitrary additional fields
	Attrs models.Attrs `json:"attrs"`
}

// CreateMaintenanceResponse represents a successful maintenance creation
// swagger:model CreateMaintenanceResponse
type CreateMaintenanceResponse struct {
	Message     string               `json:"message"`
	Maintenance models.MaintenanceDB `json:"maintenance"`
}

// MaintenanceErrorResponse represents an error response for maintenance endpoints
// swagger:model MaintenanceErrorResponse
type MaintenanceErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListMaintenancesHandler returns an HTTP handler listing all maintenances.
// @Summary List maintenances
// @Description Returns all maintenance records
// @Tags maintenances
// @Produce json
// @Success 200 {object} handlers.ListMaintenancesResponse "Maintenance list"
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.MaintenanceErrorResponse "Internal server error"
// @Router /maintenances [get]
// @Security BearerAuth
func NewListMaintenancesHandler(svc MaintenanceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maintenances, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list maintenances", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MaintenanceErrorResponse{Error: "Internal server error"})
			return
		}
		if maintenances == nil {
			maintenances = []models.MaintenanceDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListMaintenancesResponse{
			Maintenances: maintenances,
			Total:        len(maintenances),
		})
	}
}

// NewCreateMaintenanceHandler returns an HTTP handler creating a maintenance record.
// @Summary Create maintenance
// @Description Schedules a maintenance for a piece of equipment
// @Tags maintenances
// @Accept json
// @Produce json
// @Param createMaintenanceRequest body handlers.CreateMaintenanceRequest true "Maintenance"
// @Success 201 {object} handlers.CreateMaintenanceResponse "Maintenance created"
// @Failure 400 {object} handlers.MaintenanceErrorResponse "Invalid request body"
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.MaintenanceErrorResponse "Internal server error"
// @Router /maintenances [post]
// @Security BearerAuth
func NewCreateMaintenanceHandler(svc MaintenanceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMaintenanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MaintenanceErrorResponse{Error: "invalid request body"})
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		created, err := svc.Create(r.Context(), models.MaintenanceDB{
			EquipmentID: req.EquipmentID,
			ScheduledAt: req.ScheduledAt,
			Status:      req.Status,
			Attrs:       req.Attrs,
		}, user.Username)
		if err != nil {
			logger.Log.Errorw("failed to create maintenance", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MaintenanceErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateMaintenanceResponse{
			Message:     "Maintenance created successfully",
			Maintenance: *created,
		})
	}
}
