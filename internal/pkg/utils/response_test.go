package utils

import (
	"errors"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildSuccessResponse(rec, constvars.StatusCreated, constvars.CallBookedSuccessMessage, map[string]string{"callId": "abc"})

	assert.Equal(t, constvars.StatusCreated, rec.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, constvars.CallBookedSuccessMessage, body["message"])
	assert.Equal(t, "abc", body["data"].(map[string]interface{})["callId"])
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("custom error keeps status and client message", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrBookingConflict(nil, "Sriram"))

		assert.Equal(t, constvars.StatusConflict, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "This time slot overlaps with an existing call for Sriram.", body["message"])
		assert.Equal(t, constvars.ErrDevBookingConflict, body["dev_message"])
	})

	t.Run("production hides dev details", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrCallNotFound(nil))

		assert.Equal(t, constvars.StatusNotFound, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotContains(t, body, "dev_message")
		assert.NotContains(t, body, "locations")
	})

	t.Run("plain error becomes internal server error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	})
}
