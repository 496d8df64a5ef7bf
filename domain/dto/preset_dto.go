package dto

import "encoding/json"

// PresetRequest is the editable part of a preset.
type PresetRequest struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	CategoryID    string   `json:"categoryId"`
	PrivacyStatus string   `json:"privacyStatus"`
}

// ImportOptions controls how name collisions are resolved on import.
// Overwrite wins when both are set.
type ImportOptions struct {
	Overwrite bool `json:"overwrite"`
	Rename    bool `json:"rename"`
}

// ImportSummary counts what an import did.
type ImportSummary struct {
	Added      int      `json:"added"`
	Updated    int      `json:"updated"`
	Skipped    int      `json:"skipped"`
	Duplicates []string `json:"duplicates,omitempty"`
}

// ImportRequest reads presets either from a file path or from an inline envelope.
type ImportRequest struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
	ImportOptions
}

// ExportRequest optionally names a file to write the envelope to.
type ExportRequest struct {
	Path string `json:"path"`
}
