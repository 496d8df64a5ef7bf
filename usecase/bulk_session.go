package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/domain/repository"
	"yt-uploader/infrastructure/logger"

	"github.com/google/uuid"
)

// JobObserver is told about every job status change during a bulk upload.
type JobObserver interface {
	PublishJob(job *model.UploadJob)
}

// IBulkSession is the bulk upload page: a batch of jobs edited in place and
// uploaded one by one.
type IBulkSession interface {
	AddVideos(paths []string) []model.UploadJob
	Jobs() []model.UploadJob
	Remove(id string) error
	Clear()
	Update(id string, patch *dto.UploadJobPatch) (*model.UploadJob, bool, error)
	ApplyPreset(ctx context.Context, id, presetID string, autoRename bool) (*model.UploadJob, error)
	ApplyBulkSettings(ctx context.Context, settings *dto.BulkSettings) ([]model.UploadJob, bool, error)
	ReadyToUpload() bool
	UploadAll(ctx context.Context, progress dto.ProgressFunc) (*dto.BulkSummary, error)
}

// BulkSession holds the batch being prepared on the bulk upload page. It
// lives for the life of the process; jobs are never persisted.
type BulkSession struct {
	presets  repository.IPreset
	uploader IUploadUseCase
	observer JobObserver
	newID    func() string

	mu   sync.Mutex
	jobs []model.UploadJob

	running sync.Mutex
}

func NewBulkSession(presets repository.IPreset, uploader IUploadUseCase, observer JobObserver) *BulkSession {
	return &BulkSession{
		presets:  presets,
		uploader: uploader,
		observer: observer,
		newID:    uuid.NewString,
	}
}

// AddVideos appends a pending job for every supported video path not already
// in the batch and returns the new jobs.
func (s *BulkSession) AddVideos(paths []string) []model.UploadJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.jobs))
	for _, j := range s.jobs {
		seen[j.Path] = true
	}

	added := []model.UploadJob{}
	for _, p := range paths {
		if p == "" || seen[p] || !IsVideoFile(p) {
			continue
		}
		seen[p] = true
		name := filepath.Base(p)
		job := model.UploadJob{
			ID:            s.newID(),
			Path:          p,
			FileName:      name,
			Title:         titleFromFileName(name),
			Tags:          []string{},
			CategoryID:    model.DefaultJobCategoryID,
			PrivacyStatus: model.DefaultJobPrivacy,
			Status:        model.JobPending,
		}
		s.jobs = append(s.jobs, job)
		added = append(added, job.Clone())
	}
	return added
}

func (s *BulkSession) Jobs() []model.UploadJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.UploadJob, len(s.jobs))
	for i := range s.jobs {
		out[i] = s.jobs[i].Clone()
	}
	return out
}

func (s *BulkSession) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return &model.OpError{Op: "remove", Entity: "job", ID: id, Err: model.ErrNotFound}
	}
	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	return nil
}

func (s *BulkSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = nil
}

// Update edits one job. forcedPrivate reports that the privacy had to be
// pinned to private because the job is scheduled.
func (s *BulkSession) Update(id string, patch *dto.UploadJobPatch) (job *model.UploadJob, forcedPrivate bool, err error) {
	if err := validatePatch(patch); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, &model.OpError{Op: "update", Entity: "job", ID: id, Err: model.ErrNotFound}
	}
	j := &s.jobs[i]
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.Tags != nil {
		j.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.CategoryID != nil {
		j.CategoryID = *patch.CategoryID
	}
	if patch.PrivacyStatus != nil {
		j.PrivacyStatus = *patch.PrivacyStatus
	}
	if patch.MadeForKids != nil {
		j.MadeForKids = *patch.MadeForKids
	}
	if patch.ChannelID != nil {
		j.ChannelID = *patch.ChannelID
	}
	if patch.ScheduleDate != nil {
		j.ScheduleDate = *patch.ScheduleDate
	}
	if patch.ScheduleTime != nil {
		j.ScheduleTime = *patch.ScheduleTime
	}
	forcedPrivate = j.EnforceSchedulePrivacy()

	c := j.Clone()
	return &c, forcedPrivate, nil
}

// ApplyPreset copies a preset's metadata onto one job.
func (s *BulkSession) ApplyPreset(ctx context.Context, id, presetID string, autoRename bool) (*model.UploadJob, error) {
	preset, err := s.presets.Get(ctx, presetID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, &model.OpError{Op: "apply preset", Entity: "job", ID: id, Err: model.ErrNotFound}
	}
	applyPresetToJob(&s.jobs[i], preset, autoRename)
	c := s.jobs[i].Clone()
	return &c, nil
}

// ApplyBulkSettings sets channel, privacy and preset on every job, then
// schedules the batch when both a start date and a first time slot are given.
// scheduleIncomplete reports that only one of the two was set.
func (s *BulkSession) ApplyBulkSettings(ctx context.Context, settings *dto.BulkSettings) (jobs []model.UploadJob, scheduleIncomplete bool, err error) {
	if settings.PrivacyStatus != "" && !model.IsValidPrivacy(settings.PrivacyStatus) {
		return nil, false, fmt.Errorf("%w: privacy status %q", model.ErrInvalidInput, settings.PrivacyStatus)
	}
	var preset *model.Preset
	if settings.PresetID != "" {
		if preset, err = s.presets.Get(ctx, settings.PresetID); err != nil {
			return nil, false, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.UploadJob, len(s.jobs))
	for i := range s.jobs {
		j := s.jobs[i].Clone()
		if settings.ChannelID != "" {
			j.ChannelID = settings.ChannelID
		}
		if settings.PrivacyStatus != "" {
			j.PrivacyStatus = settings.PrivacyStatus
		}
		if preset != nil {
			applyPresetToJob(&j, preset, settings.AutoRename)
		}
		next[i] = j
	}

	hasDate := settings.StartDate != ""
	hasSlot := settings.TimeSlot1 != ""
	switch {
	case hasDate && hasSlot:
		if next, err = Schedule(next, settings.SchedulePlan); err != nil {
			return nil, false, err
		}
	case hasDate || hasSlot:
		scheduleIncomplete = true
	}
	for i := range next {
		next[i].EnforceSchedulePrivacy()
	}

	s.jobs = next
	out := make([]model.UploadJob, len(next))
	for i := range next {
		out[i] = next[i].Clone()
	}
	return out, scheduleIncomplete, nil
}

// ReadyToUpload reports whether the batch is non-empty and every job has a
// channel and a title.
func (s *BulkSession) ReadyToUpload() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readyLocked()
}

func (s *BulkSession) readyLocked() bool {
	if len(s.jobs) == 0 {
		return false
	}
	for _, j := range s.jobs {
		if j.ChannelID == "" || strings.TrimSpace(j.Title) == "" {
			return false
		}
	}
	return true
}

// UploadAll uploads the batch one job at a time, one attempt each. A job that
// fails is marked as error and the batch moves on. Cancelling ctx lets the
// current upload finish and stops before the next job.
func (s *BulkSession) UploadAll(ctx context.Context, progress dto.ProgressFunc) (*dto.BulkSummary, error) {
	if !s.running.TryLock() {
		return nil, model.ErrUploadInProgress
	}
	defer s.running.Unlock()

	s.mu.Lock()
	if !s.readyLocked() {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: every video needs a channel and a title", model.ErrInvalidInput)
	}
	ids := make([]string, len(s.jobs))
	for i := range s.jobs {
		ids[i] = s.jobs[i].ID
	}
	s.mu.Unlock()

	log := logger.GetLogger().WithField("jobs", len(ids))
	log.Info("Bulk upload started")
	start := time.Now()

	summary := &dto.BulkSummary{Total: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			log.WithField("error", err).Warn("Bulk upload cancelled")
			return summary, err
		}

		job, ok := s.transition(id, func(j *model.UploadJob) {
			j.Status = model.JobUploading
			j.Error = ""
		})
		if !ok {
			// Removed while the batch was running.
			summary.Total--
			continue
		}

		req := &dto.UploadRequest{
			ChannelID:     job.ChannelID,
			VideoPath:     job.Path,
			Title:         job.Title,
			Description:   job.Description,
			Tags:          JoinTags(job.Tags),
			CategoryID:    job.CategoryID,
			PrivacyStatus: job.PrivacyStatus,
			ScheduledTime: job.ScheduledTime(),
			MadeForKids:   job.MadeForKids,
		}
		result, err := s.uploader.Upload(context.WithoutCancel(ctx), req, func(p dto.UploadProgress) {
			if progress != nil {
				p.JobID = id
				progress(p)
			}
		})

		s.transition(id, func(j *model.UploadJob) {
			if err != nil {
				j.Status = model.JobError
				j.Error = err.Error()
				return
			}
			j.Status = model.JobSuccess
			j.VideoID = result.VideoID
			j.VideoURL = result.VideoURL
		})
		if err != nil {
			summary.Failed++
			log.WithField("job", id).WithField("error", err).Warn("Bulk job failed")
		} else {
			summary.Succeeded++
		}
	}

	log.WithField("succeeded", summary.Succeeded).
		WithField("failed", summary.Failed).
		WithField("elapsed", time.Since(start).String()).
		Info("Bulk upload finished")
	return summary, nil
}

// transition mutates a job under the lock and publishes the result.
func (s *BulkSession) transition(id string, fn func(*model.UploadJob)) (model.UploadJob, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return model.UploadJob{}, false
	}
	fn(&s.jobs[i])
	job := s.jobs[i].Clone()
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.PublishJob(&job)
	}
	return job, true
}

func (s *BulkSession) indexOf(id string) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func applyPresetToJob(j *model.UploadJob, p *model.Preset, autoRename bool) {
	title := j.Title
	if p.Title != "" {
		title = p.Title
	}
	if autoRename {
		title = ReplaceEpisodeNumber(title, ExtractEpisodeNumber(j.FileName))
	}
	j.Title = title
	j.Description = p.Description
	j.Tags = append([]string{}, p.Tags...)
	j.CategoryID = p.CategoryID
	j.PrivacyStatus = p.PrivacyStatus
	j.PresetID = p.ID
	j.EnforceSchedulePrivacy()
}

func validatePatch(patch *dto.UploadJobPatch) error {
	if patch == nil {
		return fmt.Errorf("%w: empty patch", model.ErrInvalidInput)
	}
	if patch.PrivacyStatus != nil && !model.IsValidPrivacy(*patch.PrivacyStatus) {
		return fmt.Errorf("%w: privacy status %q", model.ErrInvalidInput, *patch.PrivacyStatus)
	}
	if patch.Tags != nil {
		if err := validateTags(*patch.Tags); err != nil {
			return err
		}
	}
	if patch.ScheduleDate != nil && *patch.ScheduleDate != "" {
		if _, err := time.Parse(dateLayout, *patch.ScheduleDate); err != nil {
			return fmt.Errorf("%w: schedule date %q", model.ErrInvalidInput, *patch.ScheduleDate)
		}
	}
	if patch.ScheduleTime != nil && *patch.ScheduleTime != "" {
		if _, err := time.Parse(timeLayout, *patch.ScheduleTime); err != nil {
			return fmt.Errorf("%w: schedule time %q", model.ErrInvalidInput, *patch.ScheduleTime)
		}
	}
	return nil
}
