package http

import (
	"net/http"

	"yt-uploader/domain/dto"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/usecase"

	"github.com/gin-gonic/gin"
)

type ISystemHandler interface {
	Healthz(ctx *gin.Context)
	TimeSlots(ctx *gin.Context)
	OpenExternal(ctx *gin.Context)
	ValidateVideo(ctx *gin.Context)
}

type SystemHandler struct {
	systemUseCase usecase.ISystemUseCase
	texts         *i18n.Localizer
}

func NewSystemHandler(systemUseCase usecase.ISystemUseCase, texts *i18n.Localizer) ISystemHandler {
	return &SystemHandler{systemUseCase: systemUseCase, texts: texts}
}

// Healthz returns OK for health checks
func (h *SystemHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *SystemHandler) TimeSlots(ctx *gin.Context) {
	ok(ctx, h.texts.T(i18n.MsgOK), h.systemUseCase.TimeSlots())
}

// OpenExternal handles POST /api/system/open-external
func (h *SystemHandler) OpenExternal(ctx *gin.Context) {
	var req dto.OpenExternalRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	if err := h.systemUseCase.OpenExternal(req.URL); err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgOK), nil)
}

// ValidateVideo handles POST /api/system/validate-video
func (h *SystemHandler) ValidateVideo(ctx *gin.Context) {
	var req dto.ValidateVideoRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	size, err := h.systemUseCase.ValidateVideo(req.Path)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgVideoValid), gin.H{"path": req.Path, "size": size})
}
