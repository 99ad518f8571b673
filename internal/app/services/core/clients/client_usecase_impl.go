package clients

import (
	"context"
	"fmt"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/responses"
	"healthcal-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type clientUsecase struct {
	Roster contracts.ClientRoster
	Log    *zap.Logger
}

var (
	clientUsecaseInstance contracts.ClientUsecase
	onceClientUsecase     sync.Once
)

func NewClientUsecase(roster contracts.ClientRoster, logger *zap.Logger) contracts.ClientUsecase {
	onceClientUsecase.Do(func() {
		clientUsecaseInstance = &clientUsecase{
			Roster: roster,
			Log:    logger,
		}
	})
	return clientUsecaseInstance
}

func (uc *clientUsecase) FindAll(ctx context.Context) ([]responses.Client, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	clients := uc.Roster.List()
	response := make([]responses.Client, len(clients))
	for i, eachClient := range clients {
		response[i] = eachClient.ConvertIntoResponse()
	}

	uc.Log.Info("clientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("client_count", len(response)),
	)
	return response, nil
}

func (uc *clientUsecase) FindByID(ctx context.Context, clientID string) (*responses.Client, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	client := uc.Roster.FindByID(clientID)
	if client == nil {
		uc.Log.Info("clientUsecase.FindByID client not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, clientID),
		)
		return nil, exceptions.ErrClientNotFound(fmt.Errorf("client %s", clientID))
	}

	response := client.ConvertIntoResponse()
	return &response, nil
}
