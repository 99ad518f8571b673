package utils

import (
	"healthcal-service/internal/pkg/dto/requests"
	"healthcal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	ClientID string `json:"clientId" validate:"required"`
	CallType string `json:"callType" validate:"required,call_type"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid follow-up", func(t *testing.T) {
		err := ValidateStruct(bookingPayload{ClientID: "1", CallType: "follow-up"})
		assert.NoError(t, err)
	})

	t.Run("unknown call type", func(t *testing.T) {
		err := ValidateStruct(bookingPayload{ClientID: "1", CallType: "check-in"})
		assert.Error(t, err)
		assert.Equal(t, "callType must be either onboarding or follow-up", exceptions.FormatFirstValidationError(err))
	})

	t.Run("missing client", func(t *testing.T) {
		err := ValidateStruct(bookingPayload{CallType: "onboarding"})
		assert.Equal(t, "clientId is required", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateBookCallRequest(t *testing.T) {
	valid := requests.BookCall{ClientID: "1", CallType: "onboarding", StartTime: "2024-05-15T11:10:00+05:30"}
	assert.NoError(t, ValidateStruct(valid))

	invalid := valid
	invalid.StartTime = "2024-05-15 11:10"
	err := ValidateStruct(invalid)
	assert.Equal(t, "startTime must be an RFC3339 timestamp", exceptions.FormatFirstValidationError(err))
}
