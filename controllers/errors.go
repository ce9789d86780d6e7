package controllers

import (
	"context"
	"errors"
	"net/http"

	"swipe_server/models"
	"swipe_server/services"
	"swipe_server/utils"

	"go.uber.org/zap"
)

// writeServiceError maps a service error onto a status code and error code.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, code := http.StatusInternalServerError, models.ErrorCodeInternal
	var verr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		status, code = http.StatusNotFound, models.ErrorCodeNotFound
	case errors.Is(err, services.ErrInvalidReference):
		status, code = http.StatusBadRequest, models.ErrorCodeInvalidReference
	case errors.Is(err, services.ErrInvalidSelfReference):
		status, code = http.StatusBadRequest, models.ErrorCodeInvalidSelfReference
	case errors.Is(err, services.ErrInvalidAction):
		status, code = http.StatusUnprocessableEntity, models.ErrorCodeInvalidAction
	case errors.As(err, &verr):
		utils.WriteErrors(w, http.StatusUnprocessableEntity, []models.ErrorDetail{{
			Code: models.ErrorCodeValidation, Message: verr.Error(), Field: verr.Field,
		}})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		utils.WriteError(w, status, code, "internal error")
		return
	}
	utils.WriteError(w, status, code, err.Error())
}
