package configuration

import (
	"fmt"
	"path/filepath"
	"strings"

	"yt-uploader/domain/model"
)

// Layout of the data directory.
const (
	ChannelsFileName = "channels.json"
	CredentialsDir   = "credentials"
	PresetsDir       = "presets"
	PresetsFileName  = "presets.json"
)

// CallbackURL is the redirect URI the OAuth listener answers on. It has to match
// a redirect URI registered on the client, which for installed apps is plain
// http://localhost with a port.
func CallbackURL() string {
	return fmt.Sprintf("http://localhost:%d", C.OAuth.CallbackPort)
}

func ChannelsFile() string {
	return filepath.Join(C.Storage.DataDir, ChannelsFileName)
}

func CredentialsPath() string {
	return filepath.Join(C.Storage.DataDir, CredentialsDir)
}

func PresetsFile() string {
	return filepath.Join(C.Storage.DataDir, PresetsDir, PresetsFileName)
}

// UploadDefaults returns the category and privacy used when an upload omits them.
func UploadDefaults() (categoryID, privacy string) {
	categoryID = getConfigValue(C.Upload.DefaultCategoryID, "22")
	privacy = getConfigValue(C.Upload.DefaultPrivacy, model.PrivacyPrivate)
	if !model.IsValidPrivacy(privacy) {
		privacy = model.PrivacyPrivate
	}
	return categoryID, privacy
}

// getConfigValue returns the config value unless it is empty or a placeholder.
func getConfigValue(configValue, defaultValue string) string {
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
