package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/domain/repository"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/infrastructure/metrics"
)

// IUploadUseCase uploads one video to one channel.
type IUploadUseCase interface {
	Upload(ctx context.Context, req *dto.UploadRequest, progress dto.ProgressFunc) (*dto.UploadResult, error)
}

type UploadUseCase struct {
	channels        ChannelAuthorizer
	youtube         repository.IYouTubeFactory
	defaultCategory string
	defaultPrivacy  string
	location        *time.Location
}

func NewUploadUseCase(channels ChannelAuthorizer, youtube repository.IYouTubeFactory, defaultCategory, defaultPrivacy string) *UploadUseCase {
	return &UploadUseCase{
		channels:        channels,
		youtube:         youtube,
		defaultCategory: defaultCategory,
		defaultPrivacy:  defaultPrivacy,
		location:        time.Local,
	}
}

// scheduledLayouts are tried in order; the first two are local wall-clock times.
var scheduledLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.RFC3339}

func (u *UploadUseCase) Upload(ctx context.Context, req *dto.UploadRequest, progress dto.ProgressFunc) (*dto.UploadResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", model.ErrInvalidInput)
	}
	log := logger.GetLogger().WithField("channel", req.ChannelID).WithField("video", req.VideoPath)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}
	tags := SplitTags(req.Tags)
	if err := validateTags(tags); err != nil {
		return nil, err
	}
	category := req.CategoryID
	if category == "" {
		category = u.defaultCategory
	}
	privacy := req.PrivacyStatus
	if privacy == "" {
		privacy = u.defaultPrivacy
	}
	if !model.IsValidPrivacy(privacy) {
		return nil, fmt.Errorf("%w: privacy status %q", model.ErrInvalidInput, privacy)
	}
	publishAt, err := u.parseScheduledTime(req.ScheduledTime)
	if err != nil {
		return nil, err
	}
	if publishAt != nil {
		privacy = model.PrivacyPrivate
	}

	auth, err := u.channels.GetAuthorizedClient(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(req.VideoPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &model.OpError{Op: "upload", Entity: "video", ID: req.VideoPath, Err: model.ErrFileNotFound}
		}
		return nil, fmt.Errorf("stat video: %w", err)
	}

	client, err := u.youtube.NewClient(ctx, auth)
	if err != nil {
		return nil, err
	}

	size := info.Size()
	tracker := newProgressTracker(size, progress)
	start := time.Now()
	metrics.UploadsInProgress.Inc()
	video, err := client.UploadVideo(ctx, &dto.YouTubeVideoUploadRequest{
		FilePath:    req.VideoPath,
		FileSize:    size,
		Title:       title,
		Description: req.Description,
		Tags:        tags,
		CategoryID:  category,
		Privacy:     privacy,
		MadeForKids: req.MadeForKids,
		PublishAt:   publishAt,
	}, tracker.report)
	metrics.UploadsInProgress.Dec()
	metrics.RecordUpload(err == nil, size, time.Since(start).Seconds())
	if err != nil {
		log.WithField("error", err).Error("Upload failed")
		return nil, err
	}
	if tracker.last < 100 {
		tracker.report(size)
	}

	log.WithField("videoId", video.ID).Info("Upload complete")
	return &dto.UploadResult{VideoID: video.ID, VideoURL: video.URL}, nil
}

func (u *UploadUseCase) parseScheduledTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range scheduledLayouts {
		if t, err := time.ParseInLocation(layout, s, u.location); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: scheduled time %q", model.ErrInvalidInput, s)
}

// progressTracker reports every chunk with a percentage that never goes down
// and never leaves 0..100.
type progressTracker struct {
	total int64
	last  int
	fn    dto.ProgressFunc
}

func newProgressTracker(total int64, fn dto.ProgressFunc) *progressTracker {
	return &progressTracker{total: total, last: -1, fn: fn}
}

func (p *progressTracker) report(bytesRead int64) {
	if p.fn == nil {
		return
	}
	pct := 100
	if p.total > 0 {
		pct = int(math.Round(float64(bytesRead) / float64(p.total) * 100))
	}
	pct = max(p.last, 0, min(100, pct))
	p.last = pct
	p.fn(dto.UploadProgress{Progress: pct, BytesRead: min(bytesRead, p.total), TotalBytes: p.total})
}
