package model

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every layer. Callers match them with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateChannel     = errors.New("channel already added")
	ErrDuplicateName        = errors.New("name already exists")
	ErrAlreadyAuthenticated = errors.New("channel already authenticated")
	ErrAuthCancelled        = errors.New("authorization cancelled")
	ErrAuthTimeout          = errors.New("authorization timed out")
	ErrAuthExpired          = errors.New("authorization expired")
	ErrAuthInProgress       = errors.New("another authorization is in progress")
	ErrFileNotFound         = errors.New("video file not found")
	ErrQuotaExceeded        = errors.New("api quota exceeded")
	ErrUploadFailed         = errors.New("upload failed")
	ErrUploadInProgress     = errors.New("an upload batch is already running")
	ErrImportFormatInvalid  = errors.New("invalid import format")
	ErrExportEmpty          = errors.New("nothing to export")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid client credentials")
	ErrStorageCorrupt       = errors.New("store file is corrupt")
)

// Input problems with a dedicated user message. All of them match ErrInvalidInput.
var (
	ErrUnsupportedVideo = fmt.Errorf("%w: unsupported video format", ErrInvalidInput)
	ErrEmptyVideo       = fmt.Errorf("%w: video file is empty", ErrInvalidInput)
	ErrVideoTooLarge    = fmt.Errorf("%w: video file exceeds 256 GiB", ErrInvalidInput)
	ErrTagsTooLong      = fmt.Errorf("%w: tags exceed 500 characters", ErrInvalidInput)
	ErrInvalidURL       = fmt.Errorf("%w: only http and https links can be opened", ErrInvalidInput)
)

// OpError adds operation context to one of the sentinel errors above.
type OpError struct {
	Op     string // list, add, remove, refresh, ...
	Entity string // channel, preset, video, ...
	ID     string
	Err    error
}

func (e *OpError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// UploadError carries the provider's message for uploads that failed for a reason
// not covered by a more specific sentinel.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Message == "" {
		return ErrUploadFailed.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUploadFailed.Error(), e.Message)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Is makes every UploadError match ErrUploadFailed.
func (e *UploadError) Is(target error) bool { return target == ErrUploadFailed }
