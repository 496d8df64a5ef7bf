package http

import (
	"yt-uploader/domain/dto"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/usecase"

	"github.com/gin-gonic/gin"
)

type IChannelHandler interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Authenticate(ctx *gin.Context)
}

type ChannelHandler struct {
	channelUseCase usecase.IChannelUseCase
	texts          *i18n.Localizer
}

func NewChannelHandler(channelUseCase usecase.IChannelUseCase, texts *i18n.Localizer) IChannelHandler {
	return &ChannelHandler{channelUseCase: channelUseCase, texts: texts}
}

// List handles GET /api/channels
func (h *ChannelHandler) List(ctx *gin.Context) {
	channels, err := h.channelUseCase.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgOK), channels)
}

// Get handles GET /api/channels/:id
func (h *ChannelHandler) Get(ctx *gin.Context) {
	channel, err := h.channelUseCase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgOK), channel)
}

// Add handles POST /api/channels. The call blocks until the browser
// authorization finishes or times out.
func (h *ChannelHandler) Add(ctx *gin.Context) {
	var req dto.AddChannelRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	channel, err := h.channelUseCase.Add(ctx.Request.Context(), req.CredentialsPath)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgChannelAdded), channel)
}

// Remove handles DELETE /api/channels/:id
func (h *ChannelHandler) Remove(ctx *gin.Context) {
	if err := h.channelUseCase.Remove(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgChannelRemoved), nil)
}

// Refresh handles POST /api/channels/:id/refresh
func (h *ChannelHandler) Refresh(ctx *gin.Context) {
	channel, err := h.channelUseCase.RefreshStatistics(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgChannelRefreshed), channel)
}

// Authenticate handles POST /api/channels/:id/authenticate
func (h *ChannelHandler) Authenticate(ctx *gin.Context) {
	channel, err := h.channelUseCase.CompleteAuth(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgChannelAuthorized), channel)
}
