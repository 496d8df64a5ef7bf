package i18n

import (
	"errors"
	"fmt"
	"testing"

	"yt-uploader/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNew_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "en", New("").Language())
	assert.Equal(t, "en", New("fr").Language())
	assert.Equal(t, "th", New("th").Language())
	assert.Equal(t, "th", New("th-TH").Language())
}

func TestT(t *testing.T) {
	assert.Equal(t, "Channel added", New("en").T(MsgChannelAdded))
	assert.Equal(t, "เพิ่มช่องสำเร็จ", New("th").T(MsgChannelAdded))
	assert.Equal(t, "Imported 2, updated 1, skipped 0", New("en").T(MsgImportDone, 2, 1, 0))
}

func TestError(t *testing.T) {
	en := New("en")
	th := New("th")

	wrapped := &model.OpError{Op: "remove", Entity: "channel", ID: "UC1", Err: model.ErrNotFound}
	assert.Equal(t, "Not found", en.Error(wrapped))
	assert.Equal(t, "ไม่พบข้อมูล", th.Error(wrapped))

	assert.Equal(t, "Timed out waiting for authentication", en.Error(fmt.Errorf("add: %w", model.ErrAuthTimeout)))
	assert.Equal(t, "หมดเวลารอการยืนยันตัวตน", th.Error(model.ErrAuthTimeout))
	assert.Equal(t, "Upload failed: bad title", en.Error(&model.UploadError{Message: "bad title"}))
	assert.Equal(t, "Unsupported video format", en.Error(fmt.Errorf("validate: %w", model.ErrUnsupportedVideo)))
	assert.Contains(t, en.Error(fmt.Errorf("%w: title is required", model.ErrInvalidInput)), "title is required")
	assert.Equal(t, "Something went wrong: boom", en.Error(errors.New("boom")))
	assert.Equal(t, "OK", en.Error(nil))
}
