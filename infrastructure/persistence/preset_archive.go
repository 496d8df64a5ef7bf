package persistence

import (
	"errors"
	"fmt"
	"os"

	"yt-uploader/domain/model"
)

// PresetArchive is the export/import file the user picks in a save or open dialog.
type PresetArchive struct{}

func NewPresetArchive() *PresetArchive {
	return &PresetArchive{}
}

func (PresetArchive) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &model.OpError{Op: "import", Entity: "presets", ID: path, Err: model.ErrNotFound}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (PresetArchive) Write(path string, export *model.PresetExport) error {
	if err := writeJSONFile(path, export, 0o644); err != nil {
		return &model.OpError{Op: "export", Entity: "presets", ID: path, Err: err}
	}
	return nil
}
