package http

import (
	"errors"
	"net/http"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const ErrorUnmarshal = "Error while unmarshal"

var errorStatus = []struct {
	err    error
	status int
}{
	{model.ErrNotFound, http.StatusNotFound},
	{model.ErrFileNotFound, http.StatusNotFound},
	{model.ErrDuplicateChannel, http.StatusConflict},
	{model.ErrDuplicateName, http.StatusConflict},
	{model.ErrAlreadyAuthenticated, http.StatusConflict},
	{model.ErrAuthInProgress, http.StatusConflict},
	{model.ErrUploadInProgress, http.StatusConflict},
	{model.ErrAuthExpired, http.StatusUnauthorized},
	{model.ErrAuthTimeout, http.StatusRequestTimeout},
	{model.ErrAuthCancelled, http.StatusBadRequest},
	{model.ErrInvalidInput, http.StatusBadRequest},
	{model.ErrInvalidCredentials, http.StatusBadRequest},
	{model.ErrImportFormatInvalid, http.StatusBadRequest},
	{model.ErrExportEmpty, http.StatusBadRequest},
	{model.ErrQuotaExceeded, http.StatusTooManyRequests},
	{model.ErrUploadFailed, http.StatusBadGateway},
}

func statusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func ok(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Res{Success: true, Message: message, Data: data})
}

func okWithWarning(ctx *gin.Context, message, warning string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Res{Success: true, Message: message, Warning: warning, Data: data})
}

func fail(ctx *gin.Context, texts *i18n.Localizer, err error) {
	status := statusFor(err)
	entry := logger.GetLogger().WithField("path", ctx.FullPath()).WithField("error", err)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}
	ctx.JSON(status, dto.Res{Message: texts.Error(err)})
}

// bindJSON decodes the body into req and answers 400 on failure.
func bindJSON(ctx *gin.Context, texts *i18n.Localizer, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		ctx.JSON(http.StatusBadRequest, dto.Res{Message: texts.T(i18n.MsgInvalidInput, err.Error())})
		return false
	}
	return true
}
