// Package i18n renders user-facing messages in the configured UI language.
// Message keys are the English text; other languages register translations
// in the x/text default catalog.
package i18n

import (
	"errors"

	"yt-uploader/domain/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.Thai}

var matcher = language.NewMatcher(supported)

// Message keys.
const (
	MsgOK                  = "OK"
	MsgChannelAdded        = "Channel added"
	MsgChannelRemoved      = "Channel removed"
	MsgChannelRefreshed    = "Channel statistics updated"
	MsgChannelAuthorized   = "Channel authorized"
	MsgPresetSaved         = "Preset saved"
	MsgPresetDeleted       = "Preset deleted"
	MsgImportDone          = "Imported %d, updated %d, skipped %d"
	MsgExportDone          = "Exported %d presets"
	MsgUploadDone          = "Upload complete"
	MsgBulkDone            = "Uploaded %d of %d videos, %d failed"
	MsgJobsAdded           = "Added %d videos"
	MsgJobRemoved          = "Video removed from the list"
	MsgSettingsApplied     = "Settings applied"
	MsgScheduleForced      = "Scheduled videos must be private; privacy was set to private"
	MsgScheduleIncomplete  = "Set both a start date and a time slot to schedule"
	MsgVideoValid          = "Video file is valid"
	MsgAuthSuccessTitle    = "Authentication successful"
	MsgAuthSuccessBody     = "You can close this window and return to the app."
	MsgAuthFailureTitle    = "Authentication failed"
	MsgAuthFailureBody     = "Please try again."
	MsgUnauthorized        = "Unauthorized"
	MsgInternal            = "Something went wrong: %s"
	MsgNotFound            = "Not found"
	MsgDuplicateChannel    = "This channel has already been added"
	MsgDuplicateName       = "A preset with this name already exists"
	MsgAlreadyAuthorized   = "This channel is already authenticated"
	MsgAuthCancelled       = "Authentication was cancelled"
	MsgAuthTimeout         = "Timed out waiting for authentication"
	MsgAuthExpired         = "Authorization expired, please re-authenticate the channel"
	MsgAuthInProgress      = "Another authentication is already in progress"
	MsgFileNotFound        = "Video file not found"
	MsgQuotaExceeded       = "YouTube API quota exceeded, try again tomorrow"
	MsgUploadFailed        = "Upload failed: %s"
	MsgUploadInProgress    = "An upload is already running"
	MsgImportInvalid       = "The file is not a valid preset export"
	MsgExportEmpty         = "There are no presets to export"
	MsgInvalidInput        = "Invalid input: %s"
	MsgInvalidCredentials  = "The credentials file is not a valid OAuth client file"
	MsgStorageCorrupt      = "A data file is corrupt and was left untouched"
	MsgTagsTooLong         = "Tags are longer than 500 characters"
	MsgUnsupportedVideo    = "Unsupported video format"
	MsgEmptyVideo          = "Video file is empty"
	MsgVideoTooLarge       = "Video file is larger than 256 GB"
	MsgInvalidExternalLink = "Only http and https links can be opened"
)

var thai = map[string]string{
	MsgOK:                  "สำเร็จ",
	MsgChannelAdded:        "เพิ่มช่องสำเร็จ",
	MsgChannelRemoved:      "ลบช่องแล้ว",
	MsgChannelRefreshed:    "อัพเดทสถิติช่องแล้ว",
	MsgChannelAuthorized:   "ยืนยันตัวตนช่องสำเร็จ",
	MsgPresetSaved:         "บันทึก Preset แล้ว",
	MsgPresetDeleted:       "ลบ Preset แล้ว",
	MsgImportDone:          "นำเข้า %d รายการ, อัพเดท %d รายการ, ข้าม %d รายการ",
	MsgExportDone:          "ส่งออก %d Preset",
	MsgUploadDone:          "อัพโหลดสำเร็จ",
	MsgBulkDone:            "อัพโหลดสำเร็จ %d จาก %d วิดีโอ, ล้มเหลว %d",
	MsgJobsAdded:           "เพิ่ม %d วิดีโอ",
	MsgJobRemoved:          "ลบวิดีโอออกจากรายการแล้ว",
	MsgSettingsApplied:     "ใช้การตั้งค่าแล้ว",
	MsgScheduleForced:      "วิดีโอที่ตั้งเวลาต้องเป็นส่วนตัว ระบบเปลี่ยนเป็นส่วนตัวให้แล้ว",
	MsgScheduleIncomplete:  "กรุณาระบุวันที่เริ่มและช่วงเวลาเพื่อตั้งเวลาเผยแพร่",
	MsgVideoValid:          "ไฟล์วิดีโอถูกต้อง",
	MsgAuthSuccessTitle:    "ยืนยันตัวตนสำเร็จ",
	MsgAuthSuccessBody:     "คุณสามารถปิดหน้าต่างนี้และกลับไปที่แอพได้",
	MsgAuthFailureTitle:    "การยืนยันตัวตนล้มเหลว",
	MsgAuthFailureBody:     "กรุณาลองใหม่อีกครั้ง",
	MsgUnauthorized:        "ไม่ได้รับอนุญาต",
	MsgInternal:            "เกิดข้อผิดพลาด: %s",
	MsgNotFound:            "ไม่พบข้อมูล",
	MsgDuplicateChannel:    "ช่องนี้ถูกเพิ่มไว้แล้ว",
	MsgDuplicateName:       "มี Preset ชื่อนี้อยู่แล้ว",
	MsgAlreadyAuthorized:   "ช่องนี้ยืนยันตัวตนแล้ว",
	MsgAuthCancelled:       "การยืนยันตัวตนถูกยกเลิก",
	MsgAuthTimeout:         "หมดเวลารอการยืนยันตัวตน",
	MsgAuthExpired:         "การยืนยันตัวตนหมดอายุ กรุณายืนยันตัวตนช่องใหม่",
	MsgAuthInProgress:      "มีการยืนยันตัวตนอื่นกำลังดำเนินการอยู่",
	MsgFileNotFound:        "ไม่พบไฟล์วิดีโอ",
	MsgQuotaExceeded:       "เกินโควต้า YouTube API กรุณาลองใหม่พรุ่งนี้",
	MsgUploadFailed:        "อัพโหลดล้มเหลว: %s",
	MsgUploadInProgress:    "กำลังอัพโหลดอยู่",
	MsgImportInvalid:       "รูปแบบไฟล์ไม่ถูกต้อง",
	MsgExportEmpty:         "ไม่มี Preset ให้ส่งออก",
	MsgInvalidInput:        "ข้อมูลไม่ถูกต้อง: %s",
	MsgInvalidCredentials:  "ไฟล์ credentials ไม่ถูกต้อง",
	MsgStorageCorrupt:      "ไฟล์ข้อมูลเสียหาย ระบบไม่ได้เขียนทับ",
	MsgTagsTooLong:         "แท็กยาวเกิน 500 ตัวอักษร",
	MsgUnsupportedVideo:    "รูปแบบวิดีโอไม่รองรับ",
	MsgEmptyVideo:          "ไฟล์วิดีโอว่างเปล่า",
	MsgVideoTooLarge:       "ไฟล์วิดีโอใหญ่เกิน 256 GB",
	MsgInvalidExternalLink: "เปิดได้เฉพาะลิงก์ http และ https",
}

func init() {
	for key, msg := range thai {
		_ = message.SetString(language.Thai, key, msg)
	}
}

// errorKeys is checked in order; the first sentinel that matches wins.
var errorKeys = []struct {
	err error
	key string
}{
	{model.ErrNotFound, MsgNotFound},
	{model.ErrDuplicateChannel, MsgDuplicateChannel},
	{model.ErrDuplicateName, MsgDuplicateName},
	{model.ErrAlreadyAuthenticated, MsgAlreadyAuthorized},
	{model.ErrAuthCancelled, MsgAuthCancelled},
	{model.ErrAuthTimeout, MsgAuthTimeout},
	{model.ErrAuthExpired, MsgAuthExpired},
	{model.ErrAuthInProgress, MsgAuthInProgress},
	{model.ErrFileNotFound, MsgFileNotFound},
	{model.ErrQuotaExceeded, MsgQuotaExceeded},
	{model.ErrUploadInProgress, MsgUploadInProgress},
	{model.ErrImportFormatInvalid, MsgImportInvalid},
	{model.ErrExportEmpty, MsgExportEmpty},
	{model.ErrInvalidCredentials, MsgInvalidCredentials},
	{model.ErrStorageCorrupt, MsgStorageCorrupt},
	{model.ErrUnsupportedVideo, MsgUnsupportedVideo},
	{model.ErrEmptyVideo, MsgEmptyVideo},
	{model.ErrVideoTooLarge, MsgVideoTooLarge},
	{model.ErrTagsTooLong, MsgTagsTooLong},
	{model.ErrInvalidURL, MsgInvalidExternalLink},
}

// Localizer formats messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for lang, falling back to English for anything
// unsupported.
func New(lang string) *Localizer {
	tag := language.English
	if t, err := language.Parse(lang); err == nil {
		_, index, _ := matcher.Match(t)
		tag = supported[index]
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

func (l *Localizer) Language() string {
	return l.tag.String()
}

// T formats the message registered under key.
func (l *Localizer) T(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

// Error renders err as a user-facing message.
func (l *Localizer) Error(err error) string {
	if err == nil {
		return l.T(MsgOK)
	}
	var uploadErr *model.UploadError
	if errors.As(err, &uploadErr) {
		return l.T(MsgUploadFailed, uploadErr.Message)
	}
	for _, e := range errorKeys {
		if errors.Is(err, e.err) {
			return l.T(e.key)
		}
	}
	if errors.Is(err, model.ErrInvalidInput) {
		return l.T(MsgInvalidInput, err.Error())
	}
	return l.T(MsgInternal, err.Error())
}
