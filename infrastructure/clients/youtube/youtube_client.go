package youtube

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/domain/repository"
	"yt-uploader/infrastructure/logger"

	"github.com/google/go-querystring/query"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const watchBaseURL = "https://www.youtube.com/watch"

// Factory builds API clients bound to one channel's authorization.
type Factory struct {
	chunkSize int
	opts      []option.ClientOption
}

// NewFactory returns a factory uploading in chunks of chunkSize bytes. Extra
// options are appended to every service, e.g. option.WithEndpoint in tests.
func NewFactory(chunkSize int, opts ...option.ClientOption) *Factory {
	if chunkSize <= 0 {
		chunkSize = googleapi.DefaultUploadChunkSize
	}
	return &Factory{chunkSize: chunkSize, opts: opts}
}

// Client represents YouTube API client
type Client struct {
	service   *youtube.Service
	channelID string
	chunkSize int
}

// NewClient creates a YouTube client that refreshes auth.Token through
// auth.Config. A missing token means the channel has to be re-authorized.
func (f *Factory) NewClient(ctx context.Context, auth *model.ChannelAuth) (repository.IYouTube, error) {
	if auth == nil || auth.Config == nil {
		return nil, fmt.Errorf("youtube client: %w", model.ErrInvalidCredentials)
	}
	if auth.Token == nil {
		return nil, &model.OpError{Op: "authorize", Entity: "channel", ID: auth.ChannelID, Err: model.ErrAuthExpired}
	}

	httpClient := auth.Config.Client(ctx, auth.Token)
	opts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, f.opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:   service,
		channelID: auth.ChannelID,
		chunkSize: f.chunkSize,
	}, nil
}

// GetMyChannel reads identity and statistics of the authorized channel.
func (c *Client) GetMyChannel(ctx context.Context) (*model.YouTubeChannel, error) {
	response, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Mine(true).
		Context(ctx).
		Do()
	if err != nil {
		if classified := classifyError(err); classified != nil {
			return nil, &model.OpError{Op: "fetch", Entity: "channel", ID: c.channelID, Err: classified}
		}
		return nil, fmt.Errorf("failed to get my channel: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, &model.OpError{Op: "fetch", Entity: "channel", ID: c.channelID, Err: model.ErrNotFound}
	}

	channel := response.Items[0]
	ytChannel := &model.YouTubeChannel{ID: channel.Id}
	if channel.Snippet != nil {
		ytChannel.Title = channel.Snippet.Title
		ytChannel.CustomURL = channel.Snippet.CustomUrl
		ytChannel.ThumbnailURL = thumbnailURL(channel.Snippet.Thumbnails)
	}
	if s := channel.Statistics; s != nil {
		ytChannel.Statistics = model.ChannelStatistics{
			SubscriberCount: strconv.FormatUint(s.SubscriberCount, 10),
			VideoCount:      strconv.FormatUint(s.VideoCount, 10),
			ViewCount:       strconv.FormatUint(s.ViewCount, 10),
		}
	}
	return ytChannel, nil
}

// UploadVideo performs a single resumable insert. Progress is reported after
// every chunk.
func (c *Client) UploadVideo(ctx context.Context, req *dto.YouTubeVideoUploadRequest, onProgress func(bytesRead int64)) (*model.YouTubeVideo, error) {
	file, err := os.Open(req.FilePath)
	if err != nil {
		return nil, &model.OpError{Op: "upload", Entity: "video", ID: req.FilePath, Err: classifyUploadError(err)}
	}
	defer file.Close()

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
			CategoryId:  req.CategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           req.Privacy,
			SelfDeclaredMadeForKids: req.MadeForKids,
			ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
		},
	}
	if req.PublishAt != nil {
		video.Status.PublishAt = req.PublishAt.UTC().Format(time.RFC3339)
	}

	call := c.service.Videos.Insert([]string{"snippet", "status"}, video).
		Media(file, googleapi.ChunkSize(c.chunkSize)).
		Context(ctx)
	if onProgress != nil {
		call = call.ProgressUpdater(func(current, _ int64) {
			onProgress(current)
		})
	}

	response, err := call.Do()
	if err != nil {
		logger.GetLogger().WithField("channel", c.channelID).WithField("error", err).Error("Video upload failed")
		return nil, classifyUploadError(err)
	}

	watchURL, err := WatchURL(response.Id)
	if err != nil {
		return nil, err
	}
	return &model.YouTubeVideo{ID: response.Id, URL: watchURL}, nil
}

type watchQuery struct {
	V string `url:"v"`
}

// WatchURL returns https://www.youtube.com/watch?v=<id>.
func WatchURL(videoID string) (string, error) {
	values, err := query.Values(watchQuery{V: videoID})
	if err != nil {
		return "", fmt.Errorf("encode watch url: %w", err)
	}
	return watchBaseURL + "?" + values.Encode(), nil
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.Default, t.Medium, t.High} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
