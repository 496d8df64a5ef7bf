package repository

import (
	"context"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
)

// IYouTube is the remote video-hosting boundary for one authorized channel.
type IYouTube interface {
	// GetMyChannel returns identity and statistics of the authorized channel.
	GetMyChannel(ctx context.Context) (*model.YouTubeChannel, error)
	// UploadVideo streams the file once. onProgress receives the bytes sent so far.
	UploadVideo(ctx context.Context, req *dto.YouTubeVideoUploadRequest, onProgress func(bytesRead int64)) (*model.YouTubeVideo, error)
}

// IYouTubeFactory builds a client bound to a channel's credentials.
type IYouTubeFactory interface {
	NewClient(ctx context.Context, auth *model.ChannelAuth) (IYouTube, error)
}
