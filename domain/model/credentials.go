package model

import (
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ClientSecret is the body of the "installed" or "web" stanza of a Google OAuth
// client descriptor.
type ClientSecret struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	RedirectURIs []string `json:"redirect_uris"`
	AuthURI      string   `json:"auth_uri,omitempty"`
	TokenURI     string   `json:"token_uri,omitempty"`
}

// ClientCredentials is the provider-issued client descriptor file.
type ClientCredentials struct {
	Installed *ClientSecret `json:"installed,omitempty"`
	Web       *ClientSecret `json:"web,omitempty"`
}

// ParseClientCredentials decodes and validates a client descriptor.
func ParseClientCredentials(data []byte) (*ClientCredentials, error) {
	var c ClientCredentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	s := c.Secret()
	if s == nil {
		return nil, fmt.Errorf("%w: missing installed or web section", ErrInvalidCredentials)
	}
	if s.ClientID == "" || s.ClientSecret == "" {
		return nil, fmt.Errorf("%w: client_id and client_secret are required", ErrInvalidCredentials)
	}
	return &c, nil
}

// Secret returns the installed stanza, falling back to web.
func (c *ClientCredentials) Secret() *ClientSecret {
	if c.Installed != nil {
		return c.Installed
	}
	return c.Web
}

// OAuth2Config builds the client config. The registered redirect URI wins over
// fallbackRedirect when preferRegistered is set and one is present.
func (c *ClientCredentials) OAuth2Config(fallbackRedirect string, preferRegistered bool, scopes ...string) *oauth2.Config {
	s := c.Secret()
	redirect := fallbackRedirect
	if preferRegistered && len(s.RedirectURIs) > 0 && s.RedirectURIs[0] != "" {
		redirect = s.RedirectURIs[0]
	}
	endpoint := google.Endpoint
	if s.AuthURI != "" {
		endpoint.AuthURL = s.AuthURI
	}
	if s.TokenURI != "" {
		endpoint.TokenURL = s.TokenURI
	}
	return &oauth2.Config{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RedirectURL:  redirect,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}
}
