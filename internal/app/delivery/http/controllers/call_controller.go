package controllers

import (
	"context"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/requests"
	"healthcal-service/internal/pkg/exceptions"
	"healthcal-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CallController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	CallUsecase    contracts.CallUsecase
}

var (
	callControllerInstance *CallController
	onceCallController     sync.Once
)

func NewCallController(logger *zap.Logger, internalConfig *config.InternalConfig, callUsecase contracts.CallUsecase) *CallController {
	onceCallController.Do(func() {
		callControllerInstance = &CallController{
			Log:            logger,
			InternalConfig: internalConfig,
			CallUsecase:    callUsecase,
		}
	})
	return callControllerInstance
}

func (ctrl *CallController) ListCalls(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("CallController.ListCalls called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.CallUsecase.ListCalls(ctx)
	if err != nil {
		ctrl.Log.Error("CallController.ListCalls error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CallController.ListCalls succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCallCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCallsSuccessMessage, result)
}

func (ctrl *CallController) BookCall(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("CallController.BookCall called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.BookCall)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("CallController.BookCall error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookCallRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("CallController.BookCall error validating request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	callType, err := calendar.ParseCallType(request.CallType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	startTime, err := time.Parse(time.RFC3339, request.StartTime)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.CallUsecase.BookCall(ctx, contracts.BookCallInput{
		ClientID:  request.ClientID,
		CallType:  callType,
		StartTime: startTime,
	})
	if err != nil {
		ctrl.Log.Error("CallController.BookCall error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CallController.BookCall succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallIDKey, result.CallID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CallBookedSuccessMessage, result)
}

// DeleteCall accepts an optional ?date=YYYY-MM-DD to include that day's view
// in the response.
func (ctrl *CallController) DeleteCall(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	callID := chi.URLParam(r, constvars.URLParamCallID)
	rawKind := chi.URLParam(r, constvars.URLParamCallKind)
	ctrl.Log.Info("CallController.DeleteCall called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallIDKey, callID),
		zap.String(constvars.LoggingCallKindKey, rawKind),
	)

	kind, err := calendar.ParseCallKind(rawKind)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidCallKind(err))
		return
	}
	if callID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamCallID))
		return
	}

	input := contracts.DeleteCallInput{CallID: callID, Kind: kind}
	if rawDate := r.URL.Query().Get(constvars.URLParamDate); rawDate != "" {
		day, err := utils.ParseDate(rawDate)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDate(err))
			return
		}
		input.Day = &day
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.CallUsecase.DeleteCall(ctx, input)
	if err != nil {
		ctrl.Log.Error("CallController.DeleteCall error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CallDeletedSuccessMessage, result)
}
