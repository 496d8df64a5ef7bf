package persistence

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yt-uploader/domain/model"
)

func TestPresetArchive_WriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "presets-export.json")
	archive := NewPresetArchive()
	export := &model.PresetExport{
		Version:    model.PresetExportVersion,
		ExportDate: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
		Presets:    []model.Preset{*newPreset("p1", "Gaming")},
	}

	require.NoError(t, archive.Write(path, export))
	data, err := archive.Read(path)
	require.NoError(t, err)

	var got model.PresetExport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "1.0", got.Version)
	assert.True(t, export.ExportDate.Equal(got.ExportDate))
	assert.Equal(t, "Gaming", got.Presets[0].Name)
	assert.Contains(t, string(data), `"exportDate": "2024-06-01T08:30:00Z"`)
}

func TestPresetArchive_ReadMissing(t *testing.T) {
	_, err := NewPresetArchive().Read(filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, model.ErrNotFound)
}
