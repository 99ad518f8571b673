package contracts

import (
	"context"
	"healthcal-service/internal/app/models"
	"healthcal-service/internal/pkg/dto/responses"
)

type ClientRoster interface {
	List() []models.Client
	FindByID(clientID string) *models.Client
}

type ClientUsecase interface {
	FindAll(ctx context.Context) ([]responses.Client, error)
	FindByID(ctx context.Context, clientID string) (*responses.Client, error)
}
