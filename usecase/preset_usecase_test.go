package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/persistence"
	"yt-uploader/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresetUseCase(t *testing.T) (*usecase.PresetUseCase, string) {
	dir := t.TempDir()
	repo := persistence.NewPresetRepository(filepath.Join(dir, "presets", "presets.json"))
	return usecase.NewPresetUseCase(repo, persistence.NewPresetArchive()), dir
}

func envelope(t *testing.T, presets ...model.Preset) []byte {
	data, err := json.Marshal(model.PresetExport{Version: "1.0", Presets: presets})
	require.NoError(t, err)
	return data
}

func names(presets []model.Preset) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Name
	}
	return out
}

func TestPresetUseCase_CreateDefaults(t *testing.T) {
	uc, _ := newPresetUseCase(t)

	p, err := uc.Create(context.Background(), &dto.PresetRequest{Name: " Gaming "})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Gaming", p.Name)
	assert.Equal(t, "1", p.CategoryID)
	assert.Equal(t, model.PrivacyPublic, p.PrivacyStatus)
	assert.NotNil(t, p.Tags)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.UpdatedAt)
}

func TestPresetUseCase_CreateValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPresetUseCase(t)
	_, err := uc.Create(ctx, &dto.PresetRequest{Name: "A"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, &dto.PresetRequest{Name: "A"})
	assert.ErrorIs(t, err, model.ErrDuplicateName)
	_, err = uc.Create(ctx, &dto.PresetRequest{Name: ""})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = uc.Create(ctx, &dto.PresetRequest{Name: "B", PrivacyStatus: "secret"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = uc.Create(ctx, &dto.PresetRequest{Name: "C", Tags: []string{strings.Repeat("x", 501)}})
	assert.ErrorIs(t, err, model.ErrTagsTooLong)
}

func TestPresetUseCase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPresetUseCase(t)
	p, err := uc.Create(ctx, &dto.PresetRequest{Name: "A", Description: "old"})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, p.ID, &dto.PresetRequest{Name: "A2", Description: "new", Tags: []string{"x"}, PrivacyStatus: model.PrivacyUnlisted})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, model.PrivacyUnlisted, updated.PrivacyStatus)
	assert.NotNil(t, updated.UpdatedAt)
	assert.True(t, p.CreatedAt.Equal(updated.CreatedAt))

	_, err = uc.Update(ctx, "missing", &dto.PresetRequest{Name: "Z"})
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, p.ID))
	assert.ErrorIs(t, uc.Delete(ctx, p.ID), model.ErrNotFound)
}

func TestPresetUseCase_ImportRename(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPresetUseCase(t)
	for _, n := range []string{"A", "A (1)", "B"} {
		_, err := uc.Create(ctx, &dto.PresetRequest{Name: n, Description: "orig " + n})
		require.NoError(t, err)
	}

	summary, err := uc.Import(ctx, envelope(t,
		model.Preset{ID: "x1", Name: "A", Description: "imported"},
		model.Preset{ID: "x2", Name: "C"},
		model.Preset{ID: "x3", Name: "A"},
	), dto.ImportOptions{Rename: true})

	require.NoError(t, err)
	assert.Equal(t, &dto.ImportSummary{Added: 3}, summary)
	list, _ := uc.List(ctx)
	assert.Equal(t, []string{"A", "A (1)", "B", "A (2)", "C", "A (3)"}, names(list))

	seen := map[string]bool{}
	for _, p := range list {
		assert.False(t, seen[p.Name], "duplicate name %q", p.Name)
		seen[p.Name] = true
		assert.NotContains(t, []string{"x1", "x2", "x3"}, p.ID, "imported presets get fresh ids")
	}
	assert.Equal(t, "orig A", list[0].Description, "existing presets are untouched")
}

func TestPresetUseCase_ImportSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPresetUseCase(t)
	_, err := uc.Create(ctx, &dto.PresetRequest{Name: "A"})
	require.NoError(t, err)

	summary, err := uc.Import(ctx, envelope(t, model.Preset{Name: "A"}, model.Preset{Name: "B"}, model.Preset{Name: " "}), dto.ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, []string{"A"}, summary.Duplicates)
}

func TestPresetUseCase_ImportSkipsOverlongTags(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPresetUseCase(t)
	_, err := uc.Create(ctx, &dto.PresetRequest{Name: "A", Tags: []string{"keep"}})
	require.NoError(t, err)
	long := []string{strings.Repeat("x", usecase.MaxTagsLength+1)}

	summary, err := uc.Import(ctx, envelope(t,
		model.Preset{Name: "A", Tags: long},
		model.Preset{Name: "B", Tags: long},
		model.Preset{Name: "C", Tags: []string{"ok"}},
	), dto.ImportOptions{Overwrite: true})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 2, summary.Skipped)
	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, names(all))
	assert.Equal(t, []string{"keep"}, all[0].Tags)
}

func TestPresetUseCase_ExportImportOverwriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, dir := newPresetUseCase(t)
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, &dto.PresetRequest{Name: fmt.Sprintf("P%d", i), Tags: []string{"t"}, CategoryID: "20"})
		require.NoError(t, err)
	}
	before, _ := uc.List(ctx)
	path := filepath.Join(dir, "export.json")

	export, err := uc.ExportToFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", export.Version)
	assert.Len(t, export.Presets, 3)

	// Local edits are replaced by the exported version.
	_, err = uc.Update(ctx, before[1].ID, &dto.PresetRequest{Name: "P1", Description: "local edit"})
	require.NoError(t, err)

	summary, err := uc.ImportFromFile(ctx, path, dto.ImportOptions{Overwrite: true, Rename: true})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Updated)
	assert.Zero(t, summary.Added)

	after, _ := uc.List(ctx)
	require.Len(t, after, 3)
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Name, after[i].Name)
		assert.Equal(t, before[i].Description, after[i].Description)
		assert.Equal(t, before[i].Tags, after[i].Tags)
		assert.Equal(t, before[i].CategoryID, after[i].CategoryID)
	}
}

func TestPresetUseCase_ImportBareArray(t *testing.T) {
	uc, _ := newPresetUseCase(t)

	summary, err := uc.Import(context.Background(), []byte(`[{"name":"Solo"}]`), dto.ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
}

func TestPresetUseCase_ImportInvalid(t *testing.T) {
	ctx := context.Background()
	uc, _ := newPresetUseCase(t)

	for _, data := range []string{`not json`, `{"version":"1.0"}`, `{"presets":"nope"}`, ``} {
		_, err := uc.Import(ctx, []byte(data), dto.ImportOptions{})
		assert.ErrorIs(t, err, model.ErrImportFormatInvalid, data)
	}
	list, _ := uc.List(ctx)
	assert.Empty(t, list)
}

func TestPresetUseCase_ExportEmpty(t *testing.T) {
	uc, dir := newPresetUseCase(t)

	_, err := uc.Export(context.Background())
	assert.ErrorIs(t, err, model.ErrExportEmpty)

	_, err = uc.ExportToFile(context.Background(), filepath.Join(dir, "out.json"))
	assert.ErrorIs(t, err, model.ErrExportEmpty)
	assert.NoFileExists(t, filepath.Join(dir, "out.json"))
}
