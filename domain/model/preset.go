package model

import "time"

// PresetExportVersion is written into every export envelope.
const PresetExportVersion = "1.0"

// Preset defaults, as the original preset page used them.
const (
	DefaultPresetCategoryID = "1"
	DefaultPresetPrivacy    = PrivacyPublic
)

// Preset is a named, reusable set of upload metadata. Name is unique.
type Preset struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description"`
	Tags          []string   `json:"tags"`
	CategoryID    string     `json:"categoryId"`
	PrivacyStatus string     `json:"privacyStatus"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// PresetExport is the on-disk envelope produced by export and read by import.
type PresetExport struct {
	Version    string    `json:"version"`
	ExportDate time.Time `json:"exportDate"`
	Presets    []Preset  `json:"presets"`
}
