package contracts

import (
	"context"
	"healthcal-service/internal/pkg/dto/requests"
)

type NotifierService interface {
	PublishCallEvent(ctx context.Context, event *requests.CallEvent) error
	PublishAgenda(ctx context.Context, agenda *requests.AgendaEvent) error
}
