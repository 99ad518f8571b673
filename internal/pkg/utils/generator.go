package utils

import (
	"fmt"
	"healthcal-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateExportObjectName(day time.Time) string {
	return fmt.Sprintf(constvars.ExportObjectNameFormat, day.Format(constvars.DateLayout))
}
