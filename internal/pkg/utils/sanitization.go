package utils

import (
	"healthcal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeBookCallRequest(input *requests.BookCall) {
	input.ClientID = strings.TrimSpace(input.ClientID)
	input.CallType = strings.ToLower(strings.TrimSpace(input.CallType))
	input.StartTime = strings.TrimSpace(input.StartTime)
}
