package model

import "time"

// ChannelStatistics mirrors the provider's counters. YouTube reports them as
// decimal strings and the store keeps them that way.
type ChannelStatistics struct {
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
	ViewCount       string `json:"viewCount"`
}

// Channel is a registered upload target. ID is the provider channel id and is
// unique across the store.
type Channel struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	CustomURL       string            `json:"customUrl"`
	ThumbnailURL    string            `json:"thumbnailUrl"`
	Statistics      ChannelStatistics `json:"statistics"`
	CredentialsPath string            `json:"credentialsPath"`
	TokensPath      string            `json:"tokensPath"`
	AddedAt         time.Time         `json:"addedAt"`
	LastUpdated     *time.Time        `json:"lastUpdated,omitempty"`
	Authenticated   bool              `json:"authenticated"`
}

// ApplyIdentity copies the fetched identity and statistics onto the record.
func (c *Channel) ApplyIdentity(info *YouTubeChannel, now time.Time) {
	c.Name = info.Title
	c.CustomURL = info.CustomURL
	c.ThumbnailURL = info.ThumbnailURL
	c.Statistics = info.Statistics
	c.LastUpdated = &now
}
