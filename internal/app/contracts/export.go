package contracts

import (
	"context"
	"healthcal-service/internal/pkg/dto/responses"
	"time"
)

type ExportUsecase interface {
	ExportDay(ctx context.Context, day time.Time) (*responses.Export, error)
}
