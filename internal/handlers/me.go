package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/middlewares"
)

// MeResponse represents the identity of the authenticated user
// swagger:model MeResponse
type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Disabled bool      `json:"disabled"`
}

// NewMeHandler returns an HTTP handler reporting the caller's identity.
// @Summary Current user
// @Description Returns the account behind the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 "Unauthorized"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			ID:       user.UserID,
			Username: user.Username,
			Role:     user.Role,
			Disabled: user.Disabled,
		})
	}
}
