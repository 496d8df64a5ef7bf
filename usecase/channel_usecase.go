package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"yt-uploader/domain/model"
	"yt-uploader/domain/repository"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/infrastructure/metrics"
)

// IChannelUseCase manages the registered channels and their authorization.
type IChannelUseCase interface {
	List(ctx context.Context) ([]model.Channel, error)
	Get(ctx context.Context, channelID string) (*model.Channel, error)
	// Add registers the channel behind a client descriptor file. It runs the
	// interactive authorization flow.
	Add(ctx context.Context, credentialsFilePath string) (*model.Channel, error)
	Remove(ctx context.Context, channelID string) error
	RefreshStatistics(ctx context.Context, channelID string) (*model.Channel, error)
	CompleteAuth(ctx context.Context, channelID string) (*model.Channel, error)
	ChannelAuthorizer
}

// ChannelAuthorizer yields the authorization context of a stored channel.
type ChannelAuthorizer interface {
	GetAuthorizedClient(ctx context.Context, channelID string) (*model.ChannelAuth, error)
}

type ChannelUseCase struct {
	channels repository.IChannel
	files    repository.ICredentialFiles
	auth     repository.IAuthenticator
	youtube  repository.IYouTubeFactory
	now      func() time.Time
}

func NewChannelUseCase(channels repository.IChannel, files repository.ICredentialFiles, auth repository.IAuthenticator, youtube repository.IYouTubeFactory) *ChannelUseCase {
	return &ChannelUseCase{
		channels: channels,
		files:    files,
		auth:     auth,
		youtube:  youtube,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ChannelUseCase) List(ctx context.Context) ([]model.Channel, error) {
	return u.channels.List(ctx)
}

func (u *ChannelUseCase) Get(ctx context.Context, channelID string) (*model.Channel, error) {
	return u.channels.Get(ctx, channelID)
}

func (u *ChannelUseCase) Add(ctx context.Context, credentialsFilePath string) (channel *model.Channel, err error) {
	defer func() { metrics.RecordStoreOperation("channel", "add", err) }()
	log := logger.GetLogger().WithField("credentials", credentialsFilePath)

	content, err := os.ReadFile(credentialsFilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}
	creds, err := model.ParseClientCredentials(content)
	if err != nil {
		return nil, err
	}

	credPath, tokensPath, err := u.files.Stage(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("stage credentials: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := u.files.Remove(credPath, tokensPath); rmErr != nil {
			log.WithField("error", rmErr).Warn("Failed to clean up credential files")
		}
	}()

	config := creds.OAuth2Config(u.auth.RedirectURL(), false, u.auth.Scopes()...)
	token, err := u.auth.Authenticate(ctx, config)
	if err != nil {
		log.WithField("error", err).Warn("Channel authorization did not complete")
		return nil, &model.OpError{Op: "add", Entity: "channel", Err: err}
	}
	if err = u.files.SaveToken(tokensPath, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	info, err := u.fetchIdentity(ctx, &model.ChannelAuth{Config: config, Token: token})
	if err != nil {
		return nil, &model.OpError{Op: "add", Entity: "channel", Err: err}
	}

	now := u.now()
	channel = &model.Channel{
		ID:              info.ID,
		CredentialsPath: credPath,
		TokensPath:      tokensPath,
		AddedAt:         now,
		Authenticated:   true,
	}
	channel.ApplyIdentity(info, now)
	if err = u.channels.Add(ctx, channel); err != nil {
		return nil, err
	}

	log.WithField("channel", channel.ID).WithField("name", channel.Name).Info("Channel added")
	return channel, nil
}

// Remove deletes the channel's files, then its record. File deletion is best effort.
func (u *ChannelUseCase) Remove(ctx context.Context, channelID string) (err error) {
	defer func() { metrics.RecordStoreOperation("channel", "remove", err) }()

	channel, err := u.channels.Get(ctx, channelID)
	if err != nil {
		return err
	}
	if rmErr := u.files.Remove(channel.CredentialsPath, channel.TokensPath); rmErr != nil {
		logger.GetLogger().WithField("channel", channelID).WithField("error", rmErr).Warn("Failed to delete channel files")
	}
	_, err = u.channels.Remove(ctx, channelID)
	return err
}

func (u *ChannelUseCase) RefreshStatistics(ctx context.Context, channelID string) (channel *model.Channel, err error) {
	defer func() { metrics.RecordStoreOperation("channel", "refresh", err) }()

	channel, err = u.channels.Get(ctx, channelID)
	if err != nil {
		return nil, err
	}
	auth, err := u.GetAuthorizedClient(ctx, channelID)
	if err != nil {
		return nil, err
	}
	info, err := u.fetchIdentity(ctx, auth)
	if err != nil {
		return nil, &model.OpError{Op: "refresh", Entity: "channel", ID: channelID, Err: err}
	}

	channel.ApplyIdentity(info, u.now())
	if err = u.channels.Update(ctx, channelID, channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// CompleteAuth authorizes a stored channel that is not authenticated yet. The
// record takes the identity of whichever account consented.
func (u *ChannelUseCase) CompleteAuth(ctx context.Context, channelID string) (channel *model.Channel, err error) {
	defer func() { metrics.RecordStoreOperation("channel", "authorize", err) }()

	channel, err = u.channels.Get(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel.Authenticated {
		return nil, &model.OpError{Op: "authorize", Entity: "channel", ID: channelID, Err: model.ErrAlreadyAuthenticated}
	}

	creds, err := u.files.ReadCredentials(channel.CredentialsPath)
	if err != nil {
		return nil, err
	}
	config := creds.OAuth2Config(u.auth.RedirectURL(), false, u.auth.Scopes()...)
	token, err := u.auth.Authenticate(ctx, config)
	if err != nil {
		return nil, &model.OpError{Op: "authorize", Entity: "channel", ID: channelID, Err: err}
	}
	if err = u.files.SaveToken(channel.TokensPath, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	info, err := u.fetchIdentity(ctx, &model.ChannelAuth{ChannelID: channelID, Config: config, Token: token})
	if err != nil {
		return nil, &model.OpError{Op: "authorize", Entity: "channel", ID: channelID, Err: err}
	}
	channel.ID = info.ID
	channel.Authenticated = true
	channel.ApplyIdentity(info, u.now())
	if err = u.channels.Update(ctx, channelID, channel); err != nil {
		return nil, err
	}
	return channel, nil
}

// GetAuthorizedClient loads the channel's client descriptor and token. A token
// that cannot be read is logged and left nil; the remote call will then fail
// as unauthorized.
func (u *ChannelUseCase) GetAuthorizedClient(ctx context.Context, channelID string) (*model.ChannelAuth, error) {
	channel, err := u.channels.Get(ctx, channelID)
	if err != nil {
		return nil, err
	}
	creds, err := u.files.ReadCredentials(channel.CredentialsPath)
	if err != nil {
		return nil, &model.OpError{Op: "authorize", Entity: "channel", ID: channelID, Err: err}
	}

	auth := &model.ChannelAuth{
		ChannelID: channel.ID,
		Config:    creds.OAuth2Config(u.auth.RedirectURL(), true, u.auth.Scopes()...),
	}
	token, err := u.files.LoadToken(channel.TokensPath)
	if err != nil {
		logger.GetLogger().WithField("channel", channelID).WithField("error", err).Warn("Channel token unavailable")
		return auth, nil
	}
	auth.Token = token
	return auth, nil
}

func (u *ChannelUseCase) fetchIdentity(ctx context.Context, auth *model.ChannelAuth) (*model.YouTubeChannel, error) {
	client, err := u.youtube.NewClient(ctx, auth)
	if err != nil {
		return nil, err
	}
	info, err := client.GetMyChannel(ctx)
	if err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, errors.New("provider returned a channel without id")
	}
	return info, nil
}
