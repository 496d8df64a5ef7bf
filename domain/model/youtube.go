package model

import (
	"golang.org/x/oauth2"
)

// Privacy statuses accepted by the YouTube API.
const (
	PrivacyPrivate  = "private"
	PrivacyPublic   = "public"
	PrivacyUnlisted = "unlisted"
)

// YouTubeChannel is the identity and statistics of the authenticated channel as
// reported by channels.list(mine=true).
type YouTubeChannel struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	CustomURL    string            `json:"customUrl"`
	ThumbnailURL string            `json:"thumbnailUrl"`
	Statistics   ChannelStatistics `json:"statistics"`
}

// YouTubeVideo is the video the provider created after an upload.
type YouTubeVideo struct {
	ID  string `json:"videoId"`
	URL string `json:"videoUrl"`
}

// ChannelAuth is a ready-to-use authorization context for one channel.
// Token is nil when the channel's token file could not be read.
type ChannelAuth struct {
	ChannelID string
	Config    *oauth2.Config
	Token     *oauth2.Token
}

// IsValidPrivacy reports whether s is one of the privacy statuses YouTube accepts.
func IsValidPrivacy(s string) bool {
	switch s {
	case PrivacyPrivate, PrivacyPublic, PrivacyUnlisted:
		return true
	}
	return false
}
