package repository

import (
	"context"

	"yt-uploader/domain/model"
)

// IPreset persists metadata presets.
type IPreset interface {
	List(ctx context.Context) ([]model.Preset, error)
	Get(ctx context.Context, id string) (*model.Preset, error)
	// Create appends; ErrDuplicateName if the name is taken.
	Create(ctx context.Context, preset *model.Preset) error
	// Update replaces the preset with the same id; ErrNotFound or ErrDuplicateName.
	Update(ctx context.Context, preset *model.Preset) error
	Delete(ctx context.Context, id string) error
	// Mutate runs fn over the full list and persists its result in one write.
	Mutate(ctx context.Context, fn func([]model.Preset) ([]model.Preset, error)) error
}

// IPresetArchive reads and writes preset export files chosen by the user.
type IPresetArchive interface {
	Read(path string) ([]byte, error)
	Write(path string, export *model.PresetExport) error
}
