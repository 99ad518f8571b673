package controllers

import (
	"context"
	"errors"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/pkg/exceptions"
	"healthcal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// writeUsecaseError reports an exceeded request deadline as 504 ahead of the
// usecase's own mapping.
func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
