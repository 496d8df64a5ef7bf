package usecase

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"yt-uploader/domain/model"
)

// MaxVideoSize is the largest file YouTube accepts.
const MaxVideoSize int64 = 256 << 30

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

// IsVideoFile reports whether the path has a supported video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// ValidateVideoFile checks that path is an uploadable video and returns its size.
func ValidateVideoFile(path string) (int64, error) {
	if !IsVideoFile(path) {
		return 0, model.ErrUnsupportedVideo
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, model.ErrFileNotFound
		}
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, model.ErrUnsupportedVideo
	}
	switch {
	case info.Size() == 0:
		return 0, model.ErrEmptyVideo
	case info.Size() > MaxVideoSize:
		return 0, model.ErrVideoTooLarge
	}
	return info.Size(), nil
}
