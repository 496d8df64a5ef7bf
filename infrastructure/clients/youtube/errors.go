package youtube

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"yt-uploader/domain/model"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

var quotaReasons = map[string]bool{
	"quotaExceeded":       true,
	"dailyLimitExceeded":  true,
	"uploadLimitExceeded": true,
}

// classifyError maps provider failures onto the shared sentinels. It returns
// nil for errors it does not recognise.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return model.ErrFileNotFound
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.ErrorCode == "invalid_grant" || strings.Contains(string(retrieveErr.Body), "invalid_grant") {
			return model.ErrAuthExpired
		}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized {
			return model.ErrAuthExpired
		}
		for _, item := range apiErr.Errors {
			if quotaReasons[item.Reason] {
				return model.ErrQuotaExceeded
			}
		}
	}

	if strings.Contains(err.Error(), "invalid_grant") {
		return model.ErrAuthExpired
	}
	return nil
}

// classifyUploadError is classifyError with an UploadError fallback carrying
// the provider's message.
func classifyUploadError(err error) error {
	if err == nil {
		return nil
	}
	if classified := classifyError(err); classified != nil {
		return classified
	}
	message := err.Error()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return &model.UploadError{Message: message, Err: err}
}
