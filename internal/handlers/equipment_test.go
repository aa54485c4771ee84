package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func authenticatedRequest(method, target string, body []byte, user *models.UserDB) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	if user != nil {
		r = r.WithContext(middlewares.SetUserToContext(r.Context(), user))
	}
	return r
}

func TestListEquipmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEquipmentLister(ctrl)

	t.Run("success", func(t *testing.T) {
		equipment := []models.EquipmentDB{
			{EquipmentID: uuid.New(), Name: "Ventilator"},
			{EquipmentID: uuid.New(), Name: "X-Ray"},
		}
		mockSvc.EXPECT().List(gomock.Any()).Return(equipment, nil)

		r := httptest.NewRequest(http.MethodGet, "/equipment", nil)
		w := httptest.NewRecorder()

		NewListEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got ListEquipmentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 2, got.Total)
		assert.Len(t, got.Equipment, 2)
	})

	t.Run("empty list is rendered, not null", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

		r := httptest.NewRequest(http.MethodGet, "/equipment", nil)
		w := httptest.NewRecorder()

		NewListEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"equipment":[]`)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		r := httptest.NewRequest(http.MethodGet, "/equipment", nil)
		w := httptest.NewRecorder()

		NewListEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateEquipmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEquipmentCreator(ctrl)
	user := &models.UserDB{UserID: uuid.New(), Username: "admin", Role: models.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		created := &models.EquipmentDB{EquipmentID: uuid.New(), Name: "Ventilator", CreatedBy: "admin"}
		mockSvc.EXPECT().
			Create(gomock.Any(), models.EquipmentDB{Name: "Ventilator", Attrs: models.Attrs{"room": "ICU-3"}}, "admin").
			Return(created, nil)

		body, _ := json.Marshal(CreateEquipmentRequest{Name: "Ventilator", Attrs: models.Attrs{"room": "ICU-3"}})
		r := authenticatedRequest(http.MethodPost, "/equipment", body, user)
		w := httptest.NewRecorder()

		NewCreateEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got CreateEquipmentResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Equipment created successfully", got.Message)
		assert.Equal(t, created.EquipmentID, got.Equipment.EquipmentID)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		r := authenticatedRequest(http.MethodPost, "/equipment", []byte("{invalid"), user)
		w := httptest.NewRecorder()

		NewCreateEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		body, _ := json.Marshal(CreateEquipmentRequest{Name: "Ventilator"})
		r := authenticatedRequest(http.MethodPost, "/equipment", body, nil)
		w := httptest.NewRecorder()

		NewCreateEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any(), "admin").
			Return(nil, errors.New("db error"))

		body, _ := json.Marshal(CreateEquipmentRequest{Name: "Ventilator"})
		r := authenticatedRequest(http.MethodPost, "/equipment", body, user)
		w := httptest.NewRecorder()

		NewCreateEquipmentHandler(mockSvc)(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
