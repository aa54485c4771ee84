package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// EquipmentLister defines the read interface that the equipment service must implement.
type EquipmentLister interface {
	List(ctx context.Context) ([]models.EquipmentDB, error)
}

// EquipmentCreator defines the write interface that the equipment service must implement.
type EquipmentCreator interface {
	Create(ctx context.Context, equipment models.EquipmentDB, createdBy string) (*models.EquipmentDB, error)
}

// ListEquipmentResponse represents the equipment listing
// swagger:model ListEquipmentResponse
type ListEquipmentResponse struct {
	Equipment []models.EquipmentDB `json:"equipment"`
	Total     int                  `json:"total"`
}

// CreateEquipmentRequest represents the JSON body for equipment creation
// swagger:model CreateEquipmentRequest
type CreateEquipmentRequest struct {
	// Equipment name
	// required: true
	// default: Ventilator
	Name string `json:"name"`

	// Arbitrary additional fields
	Attrs models.Attrs `json:"attrs"`
}

// CreateEquipmentResponse represents a successful equipment creation
// swagger:model CreateEquipmentResponse
type CreateEquipmentResponse struct {
	Message   string             `json:"message"`
	Equipment models.EquipmentDB `json:"equipment"`
}

// EquipmentErrorResponse represents an error response for equipment endpoints
// swagger:model EquipmentErrorResponse
type EquipmentErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListEquipmentHandler returns an HTTP handler listing all equipment.
// @Summary List equipment
// @Description Returns all registered medical equipment
// @Tags equipment
// @Produce json
// @Success 200 {object} handlers.ListEquipmentResponse "Equipment list"
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.EquipmentErrorResponse "Internal server error"
// @Router /equipment [get]
// @Security BearerAuth
func NewListEquipmentHandler(svc EquipmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		equipment, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list equipment", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EquipmentErrorResponse{Error: "Internal server error"})
			return
		}
		if equipment == nil {
			equipment = []models.EquipmentDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListEquipmentResponse{
			Equipment: equipment,
			Total:     len(equipment),
		})
	}
}

// NewCreateEquipmentHandler returns an HTTP handler creating equipment.
// @Summary Create equipment
// @Description Registers a new piece of medical equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param createEquipmentRequest body handlers.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} handlers.CreateEquipmentResponse "Equipment created"
// @Failure 400 {object} handlers.EquipmentErrorResponse "Invalid request body"
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.EquipmentErrorResponse "Internal server error"
// @Router /equipment [post]
// @Security BearerAuth
func NewCreateEquipmentHandler(svc EquipmentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEquipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EquipmentErrorResponse{Error: "invalid request body"})
			return
		}

		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		created, err := svc.Create(r.Context(), models.EquipmentDB{
			Name:  req.Name,
			Attrs: req.Attrs,
		}, user.Username)
		if err != nil {
			logger.Log.Errorw("failed to create equipment", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EquipmentErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateEquipmentResponse{
			Message:   "Equipment created successfully",
			Equipment: *created,
		})
	}
}
