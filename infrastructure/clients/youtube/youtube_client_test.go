package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

func testAuth() *model.ChannelAuth {
	return &model.ChannelAuth{
		ChannelID: "UC123",
		Config: &oauth2.Config{
			ClientID:     "id",
			ClientSecret: "secret",
			Endpoint:     oauth2.Endpoint{TokenURL: "http://127.0.0.1:1/token"},
		},
		Token: &oauth2.Token{AccessToken: "access", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)},
	}
}

func TestNewClient_NilToken(t *testing.T) {
	auth := testAuth()
	auth.Token = nil

	_, err := NewFactory(0).NewClient(context.Background(), auth)

	assert.ErrorIs(t, err, model.ErrAuthExpired)
}

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewFactory(0).NewClient(context.Background(), &model.ChannelAuth{ChannelID: "x"})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestGetMyChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/channels"), r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("mine"))
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"id":"UC123","snippet":{"title":"My Channel","customUrl":"@mine",
			"thumbnails":{"default":{"url":"https://img/default.jpg"}}},
			"statistics":{"subscriberCount":"12","videoCount":"3","viewCount":"456"}}]}`)
	}))
	defer srv.Close()

	client, err := NewFactory(0, option.WithEndpoint(srv.URL+"/")).NewClient(context.Background(), testAuth())
	require.NoError(t, err)

	ch, err := client.GetMyChannel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "UC123", ch.ID)
	assert.Equal(t, "My Channel", ch.Title)
	assert.Equal(t, "@mine", ch.CustomURL)
	assert.Equal(t, "https://img/default.jpg", ch.ThumbnailURL)
	assert.Equal(t, model.ChannelStatistics{SubscriberCount: "12", VideoCount: "3", ViewCount: "456"}, ch.Statistics)
}

func TestGetMyChannel_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	client, err := NewFactory(0, option.WithEndpoint(srv.URL+"/")).NewClient(context.Background(), testAuth())
	require.NoError(t, err)

	_, err = client.GetMyChannel(context.Background())

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetMyChannel_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"code":401,"message":"Invalid Credentials","errors":[{"reason":"authError"}]}}`)
	}))
	defer srv.Close()

	client, err := NewFactory(0, option.WithEndpoint(srv.URL+"/")).NewClient(context.Background(), testAuth())
	require.NoError(t, err)

	_, err = client.GetMyChannel(context.Background())

	assert.ErrorIs(t, err, model.ErrAuthExpired)
}

func TestUploadVideo_MissingFile(t *testing.T) {
	client, err := NewFactory(0).NewClient(context.Background(), testAuth())
	require.NoError(t, err)

	_, err = client.UploadVideo(context.Background(), &dto.YouTubeVideoUploadRequest{
		FilePath: filepath.Join(t.TempDir(), "gone.mp4"),
		Title:    "x",
	}, nil)

	assert.ErrorIs(t, err, model.ErrFileNotFound)
}

func TestClassifyUploadError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), model.ErrFileNotFound},
		{"revoked grant", &oauth2.RetrieveError{ErrorCode: "invalid_grant"}, model.ErrAuthExpired},
		{"grant in message", errors.New(`oauth2: "invalid_grant" "Token has been expired or revoked."`), model.ErrAuthExpired},
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, model.ErrAuthExpired},
		{"quota", &googleapi.Error{Code: http.StatusForbidden, Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}}}, model.ErrQuotaExceeded},
		{"upload limit", &googleapi.Error{Code: http.StatusBadRequest, Errors: []googleapi.ErrorItem{{Reason: "uploadLimitExceeded"}}}, model.ErrQuotaExceeded},
		{"other", &googleapi.Error{Code: http.StatusBadRequest, Message: "invalid title"}, model.ErrUploadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyUploadError(tt.err), tt.want)
		})
	}
}

func TestClassifyUploadError_KeepsProviderMessage(t *testing.T) {
	err := classifyUploadError(&googleapi.Error{Code: http.StatusBadRequest, Message: "invalid title"})

	var uploadErr *model.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "invalid title", uploadErr.Message)
}

func TestWatchURL(t *testing.T) {
	url, err := WatchURL("abc123")

	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", url)
}
