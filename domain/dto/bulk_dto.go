package dto

// SchedulePlan is the cadence used to spread a batch over calendar days.
type SchedulePlan struct {
	StartDate    string `json:"startDate"`    // YYYY-MM-DD
	VideosPerDay int    `json:"videosPerDay"` // values below 1 count as 1
	TimeSlot1    string `json:"timeSlot1"`    // HH:MM
	TimeSlot2    string `json:"timeSlot2"`    // optional alternating slot
}

// BulkSettings is applied to every job of the session at once.
type BulkSettings struct {
	ChannelID     string `json:"channelId"`
	PresetID      string `json:"presetId"`
	PrivacyStatus string `json:"privacyStatus"`
	AutoRename    bool   `json:"autoRename"`
	SchedulePlan
}

// AddVideosRequest adds files to the bulk session.
type AddVideosRequest struct {
	Paths []string `json:"paths" binding:"required"`
}

// ApplyPresetRequest applies a preset to one job.
type ApplyPresetRequest struct {
	PresetID   string `json:"presetId"`
	AutoRename bool   `json:"autoRename"`
}

// BulkSummary is the outcome of a sequential bulk upload.
type BulkSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// AddChannelRequest points at a provider client descriptor on disk.
type AddChannelRequest struct {
	CredentialsPath string `json:"credentialsPath" binding:"required"`
}

// UploadJobPatch holds the fields of a bulk job the UI may edit.
// Pointer fields distinguish an omitted field (nil) from an explicit empty value
// (e.g. clearing the schedule date).
type UploadJobPatch struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Tags          *[]string `json:"tags"`
	CategoryID    *string   `json:"categoryId"`
	PrivacyStatus *string   `json:"privacyStatus"` // private | public | unlisted
	MadeForKids   *bool     `json:"madeForKids"`
	ChannelID     *string   `json:"channelId"`
	ScheduleDate  *string   `json:"scheduleDate"` // YYYY-MM-DD
	ScheduleTime  *string   `json:"scheduleTime"` // HH:MM
}
