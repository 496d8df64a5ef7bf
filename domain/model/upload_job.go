package model

// JobStatus is the lifecycle state of an in-memory upload job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobUploading JobStatus = "uploading"
	JobSuccess   JobStatus = "success"
	JobError     JobStatus = "error"
)

// Defaults for freshly added bulk jobs.
const (
	DefaultJobCategoryID = "1"
	DefaultJobPrivacy    = PrivacyPublic
)

// UploadJob is one video in a bulk batch. It lives only as long as the session.
type UploadJob struct {
	ID            string    `json:"id"`
	Path          string    `json:"path"`
	FileName      string    `json:"fileName"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	CategoryID    string    `json:"categoryId"`
	PrivacyStatus string    `json:"privacyStatus"`
	MadeForKids   bool      `json:"madeForKids"`
	ChannelID     string    `json:"channelId"`
	ScheduleDate  string    `json:"scheduleDate"`
	ScheduleTime  string    `json:"scheduleTime"`
	PresetID      string    `json:"presetId"`
	Status        JobStatus `json:"status"`
	Error         string    `json:"error,omitempty"`
	VideoID       string    `json:"videoId,omitempty"`
	VideoURL      string    `json:"videoUrl,omitempty"`
}

// IsScheduled reports whether either half of the publish schedule is set.
func (j *UploadJob) IsScheduled() bool {
	return j.ScheduleDate != "" || j.ScheduleTime != ""
}

// EnforceSchedulePrivacy keeps scheduled jobs private; YouTube only publishes
// private videos at publishAt. It reports whether the privacy was changed.
func (j *UploadJob) EnforceSchedulePrivacy() bool {
	if j.IsScheduled() && j.PrivacyStatus != PrivacyPrivate {
		j.PrivacyStatus = PrivacyPrivate
		return true
	}
	return false
}

// ScheduledTime returns "YYYY-MM-DDTHH:MM:00" when both date and time are set.
func (j *UploadJob) ScheduledTime() string {
	if j.ScheduleDate == "" || j.ScheduleTime == "" {
		return ""
	}
	return j.ScheduleDate + "T" + j.ScheduleTime + ":00"
}

// Clone returns a copy that does not share the tag slice.
func (j *UploadJob) Clone() UploadJob {
	c := *j
	c.Tags = append([]string{}, j.Tags...)
	return c
}
