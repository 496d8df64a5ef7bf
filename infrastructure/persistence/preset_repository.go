package persistence

import (
	"context"
	"sync"

	"yt-uploader/domain/model"
)

// PresetRepository keeps presets in presets/presets.json.
type PresetRepository struct {
	path string
	mu   sync.Mutex
}

func NewPresetRepository(path string) *PresetRepository {
	return &PresetRepository{path: path}
}

func (r *PresetRepository) List(ctx context.Context) ([]model.Preset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *PresetRepository) Get(ctx context.Context, id string) (*model.Preset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	presets, err := r.load()
	if err != nil {
		return nil, err
	}
	i := indexOfPreset(presets, id)
	if i < 0 {
		return nil, &model.OpError{Op: "get", Entity: "preset", ID: id, Err: model.ErrNotFound}
	}
	p := presets[i]
	return &p, nil
}

func (r *PresetRepository) Create(ctx context.Context, preset *model.Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	presets, err := r.load()
	if err != nil {
		return err
	}
	if indexOfPresetName(presets, preset.Name) >= 0 {
		return &model.OpError{Op: "create", Entity: "preset", ID: preset.Name, Err: model.ErrDuplicateName}
	}
	presets = append(presets, *preset)
	return r.save(presets)
}

func (r *PresetRepository) Update(ctx context.Context, preset *model.Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	presets, err := r.load()
	if err != nil {
		return err
	}
	i := indexOfPreset(presets, preset.ID)
	if i < 0 {
		return &model.OpError{Op: "update", Entity: "preset", ID: preset.ID, Err: model.ErrNotFound}
	}
	if j := indexOfPresetName(presets, preset.Name); j >= 0 && j != i {
		return &model.OpError{Op: "update", Entity: "preset", ID: preset.Name, Err: model.ErrDuplicateName}
	}
	presets[i] = *preset
	return r.save(presets)
}

func (r *PresetRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	presets, err := r.load()
	if err != nil {
		return err
	}
	i := indexOfPreset(presets, id)
	if i < 0 {
		return &model.OpError{Op: "delete", Entity: "preset", ID: id, Err: model.ErrNotFound}
	}
	presets = append(presets[:i], presets[i+1:]...)
	return r.save(presets)
}

// Mutate hands fn a copy of the list and persists whatever it returns. Nothing
// is written when fn fails.
func (r *PresetRepository) Mutate(ctx context.Context, fn func([]model.Preset) ([]model.Preset, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	presets, err := r.load()
	if err != nil {
		return err
	}
	next, err := fn(presets)
	if err != nil {
		return err
	}
	return r.save(next)
}

func (r *PresetRepository) load() ([]model.Preset, error) {
	var presets []model.Preset
	if _, err := readJSONFile(r.path, &presets); err != nil {
		return nil, &model.OpError{Op: "read", Entity: "presets", Err: err}
	}
	if presets == nil {
		presets = []model.Preset{}
	}
	return presets, nil
}

func (r *PresetRepository) save(presets []model.Preset) error {
	if presets == nil {
		presets = []model.Preset{}
	}
	if err := writeJSONFile(r.path, presets, 0o644); err != nil {
		return &model.OpError{Op: "write", Entity: "presets", Err: err}
	}
	return nil
}

func indexOfPreset(presets []model.Preset, id string) int {
	for i := range presets {
		if presets[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfPresetName(presets []model.Preset, name string) int {
	for i := range presets {
		if presets[i].Name == name {
			return i
		}
	}
	return -1
}
