package repository

import (
	"context"

	"yt-uploader/domain/model"

	"golang.org/x/oauth2"
)

// IChannel persists the registered channel list.
type IChannel interface {
	List(ctx context.Context) ([]model.Channel, error)
	Get(ctx context.Context, id string) (*model.Channel, error)
	// Add appends a channel; ErrDuplicateChannel if the id is taken.
	Add(ctx context.Context, channel *model.Channel) error
	// Update replaces the record stored under id. The record's own ID may differ
	// from id when re-authentication switched accounts.
	Update(ctx context.Context, id string, channel *model.Channel) error
	// Remove drops the record and returns it.
	Remove(ctx context.Context, id string) (*model.Channel, error)
}

// ICredentialFiles owns the per-channel credential and token files.
type ICredentialFiles interface {
	// Stage copies a client descriptor into private storage under a fresh
	// timestamp-derived name and returns the credential and token paths.
	Stage(ctx context.Context, content []byte) (credentialsPath, tokensPath string, err error)
	ReadCredentials(path string) (*model.ClientCredentials, error)
	SaveToken(path string, token *oauth2.Token) error
	LoadToken(path string) (*oauth2.Token, error)
	// Remove deletes every path, continuing past failures, and returns the joined errors.
	Remove(paths ...string) error
}

// IAuthenticator runs the interactive authorization flow.
type IAuthenticator interface {
	Authenticate(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error)
	// RedirectURL is the callback URL the authenticator listens on.
	RedirectURL() string
	// Scopes are the scopes requested for every channel.
	Scopes() []string
}
