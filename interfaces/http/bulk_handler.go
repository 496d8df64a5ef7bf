package http

import (
	"fmt"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/usecase"

	"github.com/gin-gonic/gin"
)

type IBulkHandler interface {
	ListJobs(ctx *gin.Context)
	AddVideos(ctx *gin.Context)
	UpdateJob(ctx *gin.Context)
	RemoveJob(ctx *gin.Context)
	ApplyPreset(ctx *gin.Context)
	ApplySettings(ctx *gin.Context)
	UploadAll(ctx *gin.Context)
}

type BulkHandler struct {
	session  usecase.IBulkSession
	progress ProgressPublisher
	texts    *i18n.Localizer
}

func NewBulkHandler(session usecase.IBulkSession, progress ProgressPublisher, texts *i18n.Localizer) IBulkHandler {
	return &BulkHandler{session: session, progress: progress, texts: texts}
}

// ListJobs handles GET /api/bulk/jobs
func (h *BulkHandler) ListJobs(ctx *gin.Context) {
	ok(ctx, h.texts.T(i18n.MsgOK), gin.H{
		"jobs":  h.session.Jobs(),
		"ready": h.session.ReadyToUpload(),
	})
}

// AddVideos handles POST /api/bulk/jobs. Unsupported and already listed
// files are ignored.
func (h *BulkHandler) AddVideos(ctx *gin.Context) {
	var req dto.AddVideosRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	added := h.session.AddVideos(req.Paths)
	ok(ctx, h.texts.T(i18n.MsgJobsAdded, len(added)), added)
}

// UpdateJob handles PATCH /api/bulk/jobs/:id
func (h *BulkHandler) UpdateJob(ctx *gin.Context) {
	var patch dto.UploadJobPatch
	if !bindJSON(ctx, h.texts, &patch) {
		return
	}
	job, forcedPrivate, err := h.session.Update(ctx.Param("id"), &patch)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	var warning string
	if forcedPrivate {
		warning = h.texts.T(i18n.MsgScheduleForced)
	}
	okWithWarning(ctx, h.texts.T(i18n.MsgOK), warning, job)
}

// RemoveJob handles DELETE /api/bulk/jobs/:id
func (h *BulkHandler) RemoveJob(ctx *gin.Context) {
	if err := h.session.Remove(ctx.Param("id")); err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgJobRemoved), nil)
}

// ApplyPreset handles POST /api/bulk/jobs/:id/preset
func (h *BulkHandler) ApplyPreset(ctx *gin.Context) {
	var req dto.ApplyPresetRequest
	if !bindJSON(ctx, h.texts, &req) {
		return
	}
	if req.PresetID == "" {
		fail(ctx, h.texts, fmt.Errorf("%w: presetId is required", model.ErrInvalidInput))
		return
	}
	job, err := h.session.ApplyPreset(ctx.Request.Context(), ctx.Param("id"), req.PresetID, req.AutoRename)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgSettingsApplied), job)
}

// ApplySettings handles POST /api/bulk/settings
func (h *BulkHandler) ApplySettings(ctx *gin.Context) {
	var settings dto.BulkSettings
	if !bindJSON(ctx, h.texts, &settings) {
		return
	}
	jobs, incomplete, err := h.session.ApplyBulkSettings(ctx.Request.Context(), &settings)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	var warning string
	if incomplete {
		warning = h.texts.T(i18n.MsgScheduleIncomplete)
	}
	okWithWarning(ctx, h.texts.T(i18n.MsgSettingsApplied), warning, jobs)
}

// UploadAll handles POST /api/bulk/upload. Job status and progress are
// streamed on /api/uploads/progress; the response carries the summary.
func (h *BulkHandler) UploadAll(ctx *gin.Context) {
	summary, err := h.session.UploadAll(ctx.Request.Context(), h.progress.PublishProgress)
	if err != nil {
		fail(ctx, h.texts, err)
		return
	}
	ok(ctx, h.texts.T(i18n.MsgBulkDone, summary.Succeeded, summary.Total, summary.Failed), summary)
}
