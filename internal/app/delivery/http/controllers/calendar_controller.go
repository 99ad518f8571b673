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

type CalendarController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	CallUsecase    contracts.CallUsecase
	ExportUsecase  contracts.ExportUsecase
}

var (
	calendarControllerInstance *CalendarController
	onceCalendarController     sync.Once
)

func NewCalendarController(logger *zap.Logger, internalConfig *config.InternalConfig, callUsecase contracts.CallUsecase, exportUsecase contracts.ExportUsecase) *CalendarController {
	onceCalendarController.Do(func() {
		calendarControllerInstance = &CalendarController{
			Log:            logger,
			InternalConfig: internalConfig,
			CallUsecase:    callUsecase,
			ExportUsecase:  exportUsecase,
		}
	})
	return calendarControllerInstance
}

// GetDay answers with the day's slots even when the store is unreachable; the
// view is then marked stale.
func (ctrl *CalendarController) GetDay(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	rawDate := chi.URLParam(r, constvars.URLParamDate)
	ctrl.Log.Info("CalendarController.GetDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, rawDate),
	)

	day, err := utils.ParseDate(rawDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.CallUsecase.GetDay(ctx, day)
	if err != nil {
		ctrl.Log.Error("CalendarController.GetDay error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDaySuccessMessage, result)
}

func (ctrl *CalendarController) ExportDay(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	rawDate := chi.URLParam(r, constvars.URLParamDate)
	ctrl.Log.Info("CalendarController.ExportDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, rawDate),
	)

	day, err := utils.ParseDate(rawDate)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ExportUsecase.ExportDay(ctx, day)
	if err != nil {
		ctrl.Log.Error("CalendarController.ExportDay error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CalendarController.ExportDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, result.ObjectName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DayExportedSuccessMessage, result)
}
