package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"yt-uploader/domain/model"
)

const clientJSON = `{"installed":{"client_id":"cid","client_secret":"csecret","redirect_uris":["http://localhost"]}}`

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestCredentialFiles_Stage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "credentials")
	files := NewCredentialFiles(dir)
	files.now = fixedClock(1700000000000)

	credPath, tokensPath, err := files.Stage(context.Background(), []byte(clientJSON))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "credentials_1700000000000.json"), credPath)
	assert.Equal(t, filepath.Join(dir, "tokens_1700000000000.json"), tokensPath)
	data, err := os.ReadFile(credPath)
	require.NoError(t, err)
	assert.Equal(t, clientJSON, string(data))
	info, err := os.Stat(credPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCredentialFiles_StageBumpsTakenStamp(t *testing.T) {
	dir := t.TempDir()
	files := NewCredentialFiles(dir)
	files.now = fixedClock(42)

	first, _, err := files.Stage(context.Background(), []byte(clientJSON))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens_43.json"), []byte("{}"), 0o600))

	second, tokens, err := files.Stage(context.Background(), []byte(clientJSON))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "credentials_42.json"), first)
	assert.Equal(t, filepath.Join(dir, "credentials_44.json"), second)
	assert.Equal(t, filepath.Join(dir, "tokens_44.json"), tokens)
}

func TestCredentialFiles_ReadCredentials(t *testing.T) {
	dir := t.TempDir()
	files := NewCredentialFiles(dir)
	credPath, _, err := files.Stage(context.Background(), []byte(clientJSON))
	require.NoError(t, err)

	creds, err := files.ReadCredentials(credPath)

	require.NoError(t, err)
	assert.Equal(t, "cid", creds.Secret().ClientID)

	_, err = files.ReadCredentials(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCredentialFiles_TokenRoundTrip(t *testing.T) {
	files := NewCredentialFiles(t.TempDir())
	path := filepath.Join(files.dir, "tokens_1.json")
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, files.SaveToken(path, &oauth2.Token{AccessToken: "at", RefreshToken: "rt", TokenType: "Bearer", Expiry: expiry}))
	token, err := files.LoadToken(path)

	require.NoError(t, err)
	assert.Equal(t, "rt", token.RefreshToken)
	assert.True(t, expiry.Equal(token.Expiry))

	_, err = files.LoadToken(filepath.Join(files.dir, "none.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.ErrorIs(t, files.SaveToken(path, nil), model.ErrInvalidInput)
}

func TestCredentialFiles_Remove(t *testing.T) {
	dir := t.TempDir()
	files := NewCredentialFiles(dir)
	credPath, tokensPath, err := files.Stage(context.Background(), []byte(clientJSON))
	require.NoError(t, err)

	require.NoError(t, files.Remove(credPath, tokensPath, ""))

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}
