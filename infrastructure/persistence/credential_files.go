package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"yt-uploader/domain/model"

	"golang.org/x/oauth2"
)

// CredentialFiles stores per-channel client descriptors and tokens under one
// private directory. Each channel owns exactly one pair of files.
type CredentialFiles struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

func NewCredentialFiles(dir string) *CredentialFiles {
	return &CredentialFiles{dir: dir, now: time.Now}
}

// Stage writes content to credentials_<ms>.json. The millisecond stamp is
// bumped until neither that name nor the matching tokens_<ms>.json exists.
func (c *CredentialFiles) Stage(ctx context.Context, content []byte) (string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return "", "", fmt.Errorf("create credentials dir: %w", err)
	}

	stamp := c.now().UnixMilli()
	for {
		credPath := filepath.Join(c.dir, fmt.Sprintf("credentials_%d.json", stamp))
		tokensPath := filepath.Join(c.dir, fmt.Sprintf("tokens_%d.json", stamp))
		if exists(tokensPath) {
			stamp++
			continue
		}
		f, err := os.OpenFile(credPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if errors.Is(err, os.ErrExist) {
			stamp++
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("create %s: %w", credPath, err)
		}
		if _, err := f.Write(content); err != nil {
			f.Close()
			os.Remove(credPath)
			return "", "", fmt.Errorf("write %s: %w", credPath, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(credPath)
			return "", "", fmt.Errorf("close %s: %w", credPath, err)
		}
		return credPath, tokensPath, nil
	}
}

func (c *CredentialFiles) ReadCredentials(path string) (*model.ClientCredentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}
	return model.ParseClientCredentials(data)
}

func (c *CredentialFiles) SaveToken(path string, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("save token %s: %w", path, model.ErrInvalidInput)
	}
	return writeJSONFile(path, token, 0o600)
}

func (c *CredentialFiles) LoadToken(path string) (*oauth2.Token, error) {
	var token oauth2.Token
	found, err := readJSONFile(path, &token)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("token file %s: %w", path, os.ErrNotExist)
	}
	return &token, nil
}

// Remove deletes every non-empty path. Already-missing files are not errors.
func (c *CredentialFiles) Remove(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
