package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := NewMockPinger(ctrl)

	t.Run("database reachable", func(t *testing.T) {
		mockDB.EXPECT().PingContext(gomock.Any()).Return(nil)

		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		NewHealthHandler(mockDB)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got HealthResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "ok", got.Status)
		assert.Equal(t, "connected", got.Database)
		assert.NotEmpty(t, got.Timestamp)
	})

	t.Run("database unreachable", func(t *testing.T) {
		mockDB.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		NewHealthHandler(mockDB)(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var got HealthResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "error", got.Status)
		assert.Equal(t, "disconnected", got.Database)
		assert.Contains(t, got.Error, "connection refused")
	})
}
