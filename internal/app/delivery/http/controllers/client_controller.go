package controllers

import (
	"context"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/exceptions"
	"healthcal-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClientController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ClientUsecase  contracts.ClientUsecase
}

var (
	clientControllerInstance *ClientController
	onceClientController     sync.Once
)

func NewClientController(logger *zap.Logger, internalConfig *config.InternalConfig, clientUsecase contracts.ClientUsecase) *ClientController {
	onceClientController.Do(func() {
		clientControllerInstance = &ClientController{
			Log:            logger,
			InternalConfig: internalConfig,
			ClientUsecase:  clientUsecase,
		}
	})
	return clientControllerInstance
}

func (ctrl *ClientController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ClientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ClientUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("ClientController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClientsSuccessMessage, result)
}

func (ctrl *ClientController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	clientID := chi.URLParam(r, constvars.URLParamClientID)
	ctrl.Log.Info("ClientController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	if clientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamClientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ClientUsecase.FindByID(ctx, clientID)
	if err != nil {
		ctrl.Log.Error("ClientController.FindByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClientSuccessMessage, result)
}
