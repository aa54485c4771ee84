package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

// ReportGenerator defines the interface that the report service must implement.
type ReportGenerator interface {
	Generate(ctx context.Context, generatedBy string) (*models.Report, error)
}

// ReportResponse wraps the aggregate report
// swagger:model ReportResponse
type ReportResponse struct {
	Report models.Report `json:"report"`
}

// ReportErrorResponse represents an error response for the report endpoint
// swagger:model ReportErrorResponse
type ReportErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewGetReportHandler returns an HTTP handler for the aggregate report.
// @Summary Get report
// @Description Returns aggregate equipment and maintenance statistics
// @Tags reports
// @Produce json
// @Success 200 {object} handlers.ReportResponse "Aggregate report"
// @Failure 401 "Unauthorized"
// @Failure 500 {object} handlers.ReportErrorResponse "Internal server error"
// @Router /reports [get]
// @Security BearerAuth
func NewGetReportHandler(svc ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		report, err := svc.Generate(r.Context(), user.Username)
		if err != nil {
			logger.Log.Errorw("failed to generate report", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReportErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReportResponse{Report: *report})
	}
}
