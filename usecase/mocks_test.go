package usecase_test

import (
	"context"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
	"yt-uploader/domain/repository"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	args := m.Called(ctx, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockAuthenticator) RedirectURL() string {
	return "http://localhost:3000"
}

func (m *MockAuthenticator) Scopes() []string {
	return []string{"https://www.googleapis.com/auth/youtube.upload", "https://www.googleapis.com/auth/youtube.readonly"}
}

type MockYouTubeFactory struct {
	mock.Mock
}

func (m *MockYouTubeFactory) NewClient(ctx context.Context, auth *model.ChannelAuth) (repository.IYouTube, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.IYouTube), args.Error(1)
}

type MockYouTube struct {
	mock.Mock
	// progress, when set, is replayed to the upload callback.
	progress []int64
}

func (m *MockYouTube) GetMyChannel(ctx context.Context) (*model.YouTubeChannel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.YouTubeChannel), args.Error(1)
}

func (m *MockYouTube) UploadVideo(ctx context.Context, req *dto.YouTubeVideoUploadRequest, onProgress func(bytesRead int64)) (*model.YouTubeVideo, error) {
	for _, p := range m.progress {
		onProgress(p)
	}
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.YouTubeVideo), args.Error(1)
}

type MockChannelAuthorizer struct {
	mock.Mock
}

func (m *MockChannelAuthorizer) GetAuthorizedClient(ctx context.Context, channelID string) (*model.ChannelAuth, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelAuth), args.Error(1)
}

type MockUploadUseCase struct {
	mock.Mock
}

func (m *MockUploadUseCase) Upload(ctx context.Context, req *dto.UploadRequest, progress dto.ProgressFunc) (*dto.UploadResult, error) {
	progress(dto.UploadProgress{Progress: 50})
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadResult), args.Error(1)
}

type recordingObserver struct {
	events []model.UploadJob
}

func (o *recordingObserver) PublishJob(job *model.UploadJob) {
	o.events = append(o.events, *job)
}
