package http

import (
	"net/http"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/usecase"

	"github.com/gin-gonic/gin"
)

type IPresetHandler interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	Import(ctx *gin.Context)
	Export(ctx *gin.Context)
}

type PresetHandler struct {
	presetUseCase usecase.IPresetUseCase
	texts         *i18n.Localizer
}

func NewPresetHandler(presetUseCase usecase.IPresetUseCase, texts *i18n.Localizer) IPresetHandler {
	return &PresetHandler{presetUseCase: presetUseCase, texts: texts}
}

func (h *PresetHandler) List(ctx *gin.Context) {
	presets, err := h.presetUseCase.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgOK), presets)
}

func (h *PresetHandler) Get(ctx *gin.Context) {
	preset, err := h.presetUseCase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgOK), preset)
}

func (h *PresetHandler) Create(ctx *gin.Context) {
	var req dto.PresetRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	preset, err := h.presetUseCase.Create(ctx.Request.Context(), &req)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Res{Success: true, Message: h.texts.T(i18n.MsgPresetSaved), Data: preset})
}

func (h *PresetHandler) Update(ctx *gin.Context) {
	var req dto.PresetRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	preset, err := h.presetUseCase.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgPresetSaved), preset)
}

func (h *PresetHandler) Delete(ctx *gin.Context) {
	if err := h.presetUseCase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgPresetDeleted), nil)
}

// Import handles POST /api/presets/import with either a file path or an
// inline envelope.
func (h *PresetHandler) Import(ctx *gin.Context) {
	var req dto.ImportRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}

	var (
		summary *dto.ImportSummary
		err     error
	)
	switch {
	case req.Path != "":
		summary, err = h.presetUseCase.ImportFromFile(ctx.Request.Context(), req.Path, req.ImportOptions)
	case len(req.Data) > 0:
		summary, err = h.presetUseCase.Import(ctx.Request.Context(), req.Data, req.ImportOptions)
	default:
		err = model.ErrImportFormatInvalid
	}
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgImportDone, summary.Added, summary.Updated, summary.Skipped), summary)
}

// Export handles POST /api/presets/export. The envelope is always returned;
// it is also written to disk when a path is given.
func (h *PresetHandler) Export(ctx *gin.Context) {
	var req dto.ExportRequest
	if ctx.Request.ContentLength != 0 && !bindJSON(ctx, h.texts, &req) {
		return
	}

	var (
		export *model.PresetExport
		err    error
	)
	if req.Path != "" {
		export, err = h.presetUseCase.ExportToFile(ctx.Request.Context(), req.Path)
	} else {
		export, err = h.presetUseCase.Export(ctx.Request.Context())
	}
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgExportDone, len(export.Presets)), export)
}
