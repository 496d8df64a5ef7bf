package dto

import "time"

// UploadRequest is the single-video upload form as the UI sends it.
type UploadRequest struct {
	ChannelID     string `json:"channelId" binding:"required"`
	VideoPath     string `json:"videoPath" binding:"required"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Tags          string `json:"tags"` // comma separated
	CategoryID    string `json:"categoryId"`
	PrivacyStatus string `json:"privacyStatus"`
	ScheduledTime string `json:"scheduledTime,omitempty"` // YYYY-MM-DDTHH:MM[:SS] local, or RFC3339
	MadeForKids   bool   `json:"madeForKids"`
}

// YouTubeVideoUploadRequest is the provider-bound metadata for videos.insert.
type YouTubeVideoUploadRequest struct {
	FilePath    string
	FileSize    int64
	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Privacy     string // private, public, unlisted
	MadeForKids bool
	PublishAt   *time.Time
}

// UploadProgress is reported after every transferred chunk.
type UploadProgress struct {
	JobID      string `json:"jobId,omitempty"`
	Progress   int    `json:"progress"` // 0-100
	BytesRead  int64  `json:"bytesRead"`
	TotalBytes int64  `json:"totalBytes"`
}

// ProgressFunc receives upload progress. It is called on the uploading goroutine.
type ProgressFunc func(UploadProgress)

// UploadResult is returned for a successful upload.
type UploadResult struct {
	VideoID  string `json:"videoId"`
	VideoURL string `json:"videoUrl"`
}

// ValidateVideoRequest asks whether a path is an uploadable video file.
type ValidateVideoRequest struct {
	Path string `json:"path" binding:"required"`
}

// OpenExternalRequest asks the backend to open a URL in the default browser.
type OpenExternalRequest struct {
	URL string `json:"url" binding:"required"`
}
