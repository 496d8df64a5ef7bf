package http

import (
	"context"

	"yt-uploader/domain/dto"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/usecase"

	"github.com/gin-gonic/gin"
)

// ProgressPublisher forwards upload progress to the SSE stream.
type ProgressPublisher interface {
	PublishProgress(p dto.UploadProgress)
}

type IUploadHandler interface {
	Upload(ctx *gin.Context)
}

type UploadHandler struct {
	uploadUseCase usecase.IUploadUseCase
	progress      ProgressPublisher
	texts         *i18n.Localizer
}

func NewUploadHandler(uploadUseCase usecase.IUploadUseCase, progress ProgressPublisher, texts *i18n.Localizer) IUploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase, progress: progress, texts: texts}
}

// Upload handles POST /api/uploads. The response is sent when the upload
// finishes; progress is streamed on /api/uploads/progress meanwhile. A client
// that goes away does not abort the upload.
func (h *UploadHandler) Upload(ctx *gin.Context) {
	var req dto.UploadRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	result, err := h.uploadUseCase.Upload(context.WithoutCancel(ctx.Request.Context()), &req, h.progress.PublishProgress)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgUploadDone), result)
}
