package usecase

import (
	"fmt"
	"net/url"

	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/logger"

	"github.com/pkg/browser"
)

// ISystemUseCase covers the desktop helpers the shell cannot do on its own.
type ISystemUseCase interface {
	OpenExternal(rawURL string) error
	ValidateVideo(path string) (int64, error)
	TimeSlots() []string
}

type SystemUseCase struct {
	open func(url string) error
}

func NewSystemUseCase() *SystemUseCase {
	return &SystemUseCase{open: browser.OpenURL}
}

// WithOpener replaces the browser launcher.
func (u *SystemUseCase) WithOpener(open func(url string) error) *SystemUseCase {
	u.open = open
	return u
}

// OpenExternal opens an http or https link in the default browser.
func (u *SystemUseCase) OpenExternal(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return model.ErrInvalidURL
	}
	if err := u.open(parsed.String()); err != nil {
		logger.GetLogger().WithField("url", rawURL).WithField("error", err).Error("Failed to open browser")
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

func (u *SystemUseCase) ValidateVideo(path string) (int64, error) {
	return ValidateVideoFile(path)
}

func (u *SystemUseCase) TimeSlots() []string {
	return TimeSlots()
}
