package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/domain/repository"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/infrastructure/metrics"

	"github.com/google/uuid"
)

// IPresetUseCase manages metadata presets and their export files.
type IPresetUseCase interface {
	List(ctx context.Context) ([]model.Preset, error)
	Get(ctx context.Context, id string) (*model.Preset, error)
	Create(ctx context.Context, req *dto.PresetRequest) (*model.Preset, error)
	Update(ctx context.Context, id string, req *dto.PresetRequest) (*model.Preset, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, data []byte, opts dto.ImportOptions) (*dto.ImportSummary, error)
	ImportFromFile(ctx context.Context, path string, opts dto.ImportOptions) (*dto.ImportSummary, error)
	Export(ctx context.Context) (*model.PresetExport, error)
	ExportToFile(ctx context.Context, path string) (*model.PresetExport, error)
}

type PresetUseCase struct {
	presets repository.IPreset
	archive repository.IPresetArchive
	now     func() time.Time
	newID   func() string
}

func NewPresetUseCase(presets repository.IPreset, archive repository.IPresetArchive) *PresetUseCase {
	return &PresetUseCase{
		presets: presets,
		archive: archive,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (u *PresetUseCase) List(ctx context.Context) ([]model.Preset, error) {
	return u.presets.List(ctx)
}

func (u *PresetUseCase) Get(ctx context.Context, id string) (*model.Preset, error) {
	return u.presets.Get(ctx, id)
}

func (u *PresetUseCase) Create(ctx context.Context, req *dto.PresetRequest) (preset *model.Preset, err error) {
	defer func() { metrics.RecordStoreOperation("preset", "create", err) }()

	preset = &model.Preset{ID: u.newID(), CreatedAt: u.now()}
	if err = applyPresetRequest(preset, req); err != nil {
		return nil, err
	}
	if err = u.presets.Create(ctx, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

func (u *PresetUseCase) Update(ctx context.Context, id string, req *dto.PresetRequest) (preset *model.Preset, err error) {
	defer func() { metrics.RecordStoreOperation("preset", "update", err) }()

	preset, err = u.presets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = applyPresetRequest(preset, req); err != nil {
		return nil, err
	}
	now := u.now()
	preset.UpdatedAt = &now
	if err = u.presets.Update(ctx, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

func (u *PresetUseCase) Delete(ctx context.Context, id string) (err error) {
	defer func() { metrics.RecordStoreOperation("preset", "delete", err) }()
	return u.presets.Delete(ctx, id)
}

// Import merges presets from an export envelope or a bare preset array.
// Name collisions are resolved by opts; imported presets always get fresh ids
// unless they overwrite an existing one.
func (u *PresetUseCase) Import(ctx context.Context, data []byte, opts dto.ImportOptions) (summary *dto.ImportSummary, err error) {
	defer func() { metrics.RecordStoreOperation("preset", "import", err) }()

	incoming, err := parsePresetImport(data)
	if err != nil {
		return nil, err
	}

	summary = &dto.ImportSummary{}
	err = u.presets.Mutate(ctx, func(current []model.Preset) ([]model.Preset, error) {
		now := u.now()
		for _, p := range incoming {
			p.Name = strings.TrimSpace(p.Name)
			if p.Name == "" {
				summary.Skipped++
				continue
			}
			normalizePreset(&p)
			if validateTags(p.Tags) != nil {
				summary.Skipped++
				continue
			}

			i := indexByName(current, p.Name)
			switch {
			case i >= 0 && opts.Overwrite:
				existing := current[i]
				p.ID = existing.ID
				p.CreatedAt = existing.CreatedAt
				p.UpdatedAt = &now
				current[i] = p
				summary.Updated++
			case i >= 0 && opts.Rename:
				p.Name = uniqueName(current, p.Name)
				p.ID = u.newID()
				p.CreatedAt = now
				p.UpdatedAt = nil
				current = append(current, p)
				summary.Added++
			case i >= 0:
				summary.Skipped++
				summary.Duplicates = append(summary.Duplicates, p.Name)
			default:
				p.ID = u.newID()
				if p.CreatedAt.IsZero() {
					p.CreatedAt = now
				}
				current = append(current, p)
				summary.Added++
			}
		}
		return current, nil
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().
		WithField("added", summary.Added).
		WithField("updated", summary.Updated).
		WithField("skipped", summary.Skipped).
		Info("Presets imported")
	return summary, nil
}

func (u *PresetUseCase) ImportFromFile(ctx context.Context, path string, opts dto.ImportOptions) (*dto.ImportSummary, error) {
	data, err := u.archive.Read(path)
	if err != nil {
		return nil, err
	}
	return u.Import(ctx, data, opts)
}

func (u *PresetUseCase) Export(ctx context.Context) (*model.PresetExport, error) {
	presets, err := u.presets.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, model.ErrExportEmpty
	}
	return &model.PresetExport{
		Version:    model.PresetExportVersion,
		ExportDate: u.now(),
		Presets:    presets,
	}, nil
}

func (u *PresetUseCase) ExportToFile(ctx context.Context, path string) (*model.PresetExport, error) {
	export, err := u.Export(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.archive.Write(path, export); err != nil {
		return nil, err
	}
	return export, nil
}

func applyPresetRequest(p *model.Preset, req *dto.PresetRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty preset", model.ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: preset name is required", model.ErrInvalidInput)
	}
	if req.PrivacyStatus != "" && !model.IsValidPrivacy(req.PrivacyStatus) {
		return fmt.Errorf("%w: privacy status %q", model.ErrInvalidInput, req.PrivacyStatus)
	}
	if err := validateTags(req.Tags); err != nil {
		return err
	}
	p.Name = name
	p.Title = req.Title
	p.Description = req.Description
	p.Tags = append([]string{}, req.Tags...)
	p.CategoryID = req.CategoryID
	p.PrivacyStatus = req.PrivacyStatus
	normalizePreset(p)
	return nil
}

func normalizePreset(p *model.Preset) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.CategoryID == "" {
		p.CategoryID = model.DefaultPresetCategoryID
	}
	if !model.IsValidPrivacy(p.PrivacyStatus) {
		p.PrivacyStatus = model.DefaultPresetPrivacy
	}
}

// parsePresetImport accepts {"presets": [...]} or a bare array.
func parsePresetImport(data []byte) ([]model.Preset, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var presets []model.Preset
		if err := json.Unmarshal(data, &presets); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrImportFormatInvalid, err)
		}
		return presets, nil
	}

	var envelope struct {
		Presets *[]model.Preset `json:"presets"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrImportFormatInvalid, err)
	}
	if envelope.Presets == nil {
		return nil, fmt.Errorf("%w: missing presets", model.ErrImportFormatInvalid)
	}
	return *envelope.Presets, nil
}

func indexByName(presets []model.Preset, name string) int {
	for i := range presets {
		if presets[i].Name == name {
			return i
		}
	}
	return -1
}

// uniqueName appends " (n)" with the smallest n >= 1 that is not taken.
func uniqueName(presets []model.Preset, name string) string {
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		if indexByName(presets, candidate) < 0 {
			return candidate
		}
	}
}
