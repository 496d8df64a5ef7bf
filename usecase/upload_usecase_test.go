package usecase_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type uploadFixture struct {
	channels *MockChannelAuthorizer
	factory  *MockYouTubeFactory
	client   *MockYouTube
	uc       *usecase.UploadUseCase
	video    string
}

func newUploadFixture(t *testing.T, size int) *uploadFixture {
	f := &uploadFixture{
		channels: new(MockChannelAuthorizer),
		factory:  new(MockYouTubeFactory),
		client:   new(MockYouTube),
		video:    filepath.Join(t.TempDir(), "clip.mp4"),
	}
	require.NoError(t, os.WriteFile(f.video, make([]byte, size), 0o644))
	f.uc = usecase.NewUploadUseCase(f.channels, f.factory, "22", model.PrivacyPrivate)
	return f
}

func (f *uploadFixture) authorize(ctx context.Context) {
	auth := &model.ChannelAuth{ChannelID: "UC1", Config: &oauth2.Config{}, Token: &oauth2.Token{AccessToken: "at"}}
	f.channels.On("GetAuthorizedClient", ctx, "UC1").Return(auth, nil)
	f.factory.On("NewClient", ctx, auth).Return(f.client, nil)
}

func TestUpload_Success(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t, 1000)
	f.authorize(ctx)
	f.client.progress = []int64{0, 250, 250, 600, 1000}
	f.client.On("UploadVideo", ctx, mock.MatchedBy(func(r *dto.YouTubeVideoUploadRequest) bool {
		return r.Title == "My video" &&
			assert.ObjectsAreEqual([]string{"a", "b"}, r.Tags) &&
			r.CategoryID == "22" &&
			r.Privacy == model.PrivacyPrivate &&
			r.FileSize == 1000 &&
			r.PublishAt == nil &&
			r.MadeForKids
	})).Return(&model.YouTubeVideo{ID: "vid1", URL: "https://www.youtube.com/watch?v=vid1"}, nil)

	var seen []int
	var read []int64
	res, err := f.uc.Upload(ctx, &dto.UploadRequest{
		ChannelID:   "UC1",
		VideoPath:   f.video,
		Title:       "My video",
		Tags:        "a, b,",
		MadeForKids: true,
	}, func(p dto.UploadProgress) {
		seen = append(seen, p.Progress)
		read = append(read, p.BytesRead)
		assert.EqualValues(t, 1000, p.TotalBytes)
	})

	require.NoError(t, err)
	assert.Equal(t, "vid1", res.VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", res.VideoURL)
	assert.Equal(t, []int{0, 25, 25, 60, 100}, seen)
	assert.Equal(t, []int64{0, 250, 250, 600, 1000}, read)
}

func TestUpload_ProgressReportsEveryChunk(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t, 1000)
	f.authorize(ctx)
	f.client.progress = []int64{1, 2, 3, 4, 6, 600, 500}
	f.client.On("UploadVideo", ctx, mock.Anything).Return(&model.YouTubeVideo{ID: "vid3"}, nil)

	var seen []dto.UploadProgress
	_, err := f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video, Title: "t"}, func(p dto.UploadProgress) {
		seen = append(seen, p)
	})

	require.NoError(t, err)
	var read []int64
	var pct []int
	for _, p := range seen {
		read = append(read, p.BytesRead)
		pct = append(pct, p.Progress)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 600, 500, 1000}, read)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 60, 60, 100}, pct)
}

func TestUpload_ScheduledForcesPrivate(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t, 10)
	f.authorize(ctx)
	want := time.Date(2024, 3, 1, 18, 30, 0, 0, time.Local)
	f.client.On("UploadVideo", ctx, mock.MatchedBy(func(r *dto.YouTubeVideoUploadRequest) bool {
		return r.Privacy == model.PrivacyPrivate && r.PublishAt != nil && r.PublishAt.Equal(want) && r.CategoryID == "20"
	})).Return(&model.YouTubeVideo{ID: "vid2"}, nil)

	_, err := f.uc.Upload(ctx, &dto.UploadRequest{
		ChannelID:     "UC1",
		VideoPath:     f.video,
		Title:         "t",
		CategoryID:    "20",
		PrivacyStatus: model.PrivacyPublic,
		ScheduledTime: "2024-03-01T18:30:00",
	}, nil)

	require.NoError(t, err)
	f.client.AssertExpectations(t)
}

func TestUpload_Validation(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t, 10)

	_, err := f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video, Title: "  "}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video, Title: "t", PrivacyStatus: "friends"}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video, Title: "t", ScheduledTime: "tomorrow"}, nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	f.channels.AssertNotCalled(t, "GetAuthorizedClient", mock.Anything, mock.Anything)
}

func TestUpload_UnknownChannel(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t, 10)
	f.channels.On("GetAuthorizedClient", ctx, "UC404").Return(nil, &model.OpError{Op: "get", Entity: "channel", ID: "UC404", Err: model.ErrNotFound})

	_, err := f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC404", VideoPath: f.video, Title: "t"}, nil)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpload_MissingFile(t *testing.T) {
	ctx := context.Background()
	f := newUploadFixture(t, 10)
	f.authorize(ctx)

	_, err := f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video + ".gone", Title: "t"}, nil)

	assert.ErrorIs(t, err, model.ErrFileNotFound)
	f.factory.AssertNotCalled(t, "NewClient", mock.Anything, mock.Anything)
}

func TestUpload_ProviderErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	for _, providerErr := range []error{model.ErrQuotaExceeded, model.ErrAuthExpired, &model.UploadError{Message: "bad"}} {
		f := newUploadFixture(t, 10)
		f.authorize(ctx)
		f.client.On("UploadVideo", ctx, mock.Anything).Return(nil, providerErr)

		_, err := f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video, Title: "t"}, nil)

		assert.ErrorIs(t, err, providerErr)
	}
}

func TestUpload_FailureLogKeepsCallerFile(t *testing.T) {
	var buf bytes.Buffer
	logger.Setup("json", "debug", "")
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stdout)

	ctx := context.Background()
	f := newUploadFixture(t, 10)
	f.authorize(ctx)
	f.client.On("UploadVideo", ctx, mock.Anything).Return(nil, model.ErrQuotaExceeded)

	_, err := f.uc.Upload(ctx, &dto.UploadRequest{ChannelID: "UC1", VideoPath: f.video, Title: "t"}, nil)
	require.ErrorIs(t, err, model.ErrQuotaExceeded)

	var entry map[string]interface{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var e map[string]interface{}
		if json.Unmarshal(scanner.Bytes(), &e) == nil && e["msg"] == "Upload failed" {
			entry = e
		}
	}
	require.NotNil(t, entry, buf.String())
	assert.Equal(t, "upload_usecase.go", entry["file"])
	assert.Equal(t, f.video, entry["video"])
	assert.Equal(t, "UC1", entry["channel"])
}
