package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"yt-uploader/domain/model"
	"yt-uploader/infrastructure/i18n"
	"yt-uploader/infrastructure/logger"
	"yt-uploader/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"google.golang.org/api/youtube/v3"
)

// State is the phase of the interactive authorization flow.
type State int32

const (
	Idle State = iota
	AwaitingBrowserAuth
	AwaitingCallback
	Completed
	Failed
	TimedOut
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingBrowserAuth:
		return "awaiting_browser_auth"
	case AwaitingCallback:
		return "awaiting_callback"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed_out"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Opener shows url to the user, normally in the default browser.
type Opener func(url string) error

type result struct {
	token *oauth2.Token
	err   error
}

// Authenticator runs the installed-app authorization code flow with a
// short-lived loopback listener. Only one flow runs per process.
type Authenticator struct {
	port    int
	host    string
	timeout time.Duration
	open    Opener
	texts   *i18n.Localizer

	flow  sync.Mutex
	state atomic.Int32
}

func NewAuthenticator(callbackPort int, timeout time.Duration, texts *i18n.Localizer) *Authenticator {
	return &Authenticator{
		port:    callbackPort,
		host:    "127.0.0.1",
		timeout: timeout,
		open:    browser.OpenURL,
		texts:   texts,
	}
}

// WithOpener replaces the browser launcher.
func (a *Authenticator) WithOpener(open Opener) *Authenticator {
	a.open = open
	return a
}

func (a *Authenticator) RedirectURL() string {
	return fmt.Sprintf("http://localhost:%d", a.port)
}

func (a *Authenticator) Scopes() []string {
	return []string{youtube.YoutubeUploadScope, youtube.YoutubeReadonlyScope}
}

// State reports the phase of the current or last flow.
func (a *Authenticator) State() State {
	return State(a.state.Load())
}

// Authenticate opens the consent page and waits for the provider to redirect
// back with a code, then exchanges it. It fails with ErrAuthInProgress when
// another flow is running, ErrAuthCancelled when the user denies access and
// ErrAuthTimeout when nothing arrives in time.
func (a *Authenticator) Authenticate(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	if !a.flow.TryLock() {
		return nil, model.ErrAuthInProgress
	}
	defer a.flow.Unlock()

	a.setState(AwaitingBrowserAuth)
	log := logger.GetLogger().WithField("port", a.port)

	state, err := randomState()
	if err != nil {
		a.finish(Failed)
		return nil, err
	}

	results := make(chan result, 1)
	var once sync.Once
	deliver := func(r result) {
		once.Do(func() { results <- r })
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(a.host, fmt.Sprint(a.port)))
	if err != nil {
		a.finish(Failed)
		return nil, fmt.Errorf("start callback listener: %w", err)
	}
	srv := &http.Server{
		Handler:           a.callbackEngine(ctx, config, state, deliver),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("error", err).Error("Callback listener stopped")
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	a.setState(AwaitingCallback)
	if err := a.open(authURL); err != nil {
		// The user can still open the link by hand.
		log.WithField("error", err).WithField("url", authURL).Warn("Could not open browser for authorization")
	}
	log.Info("Waiting for authorization callback")

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case r := <-results:
		if r.err != nil {
			a.finish(Failed)
			return nil, r.err
		}
		a.finish(Completed)
		return r.token, nil
	case <-timer.C:
		a.finish(TimedOut)
		return nil, model.ErrAuthTimeout
	case <-ctx.Done():
		a.finish(Failed)
		return nil, ctx.Err()
	}
}

func (a *Authenticator) callbackEngine(ctx context.Context, config *oauth2.Config, state string, deliver func(result)) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(pageTemplate)

	handle := func(c *gin.Context) {
		code := c.Query("code")
		oauthErr := c.Query("error")
		if code == "" && oauthErr == "" {
			c.Status(http.StatusNotFound)
			return
		}
		if c.Query("state") != state {
			logger.GetLogger().Warn("Ignoring authorization callback with mismatched state")
			c.String(http.StatusBadRequest, "invalid state")
			return
		}

		if oauthErr != "" {
			c.HTML(http.StatusBadRequest, "page", a.failurePage())
			deliver(result{err: fmt.Errorf("%w: %s", model.ErrAuthCancelled, oauthErr)})
			return
		}

		token, err := config.Exchange(ctx, code)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "page", a.failurePage())
			deliver(result{err: fmt.Errorf("exchange authorization code: %w", err)})
			return
		}
		c.HTML(http.StatusOK, "page", a.successPage())
		deliver(result{token: token})
	}

	engine.GET("/", handle)
	engine.NoRoute(handle)
	return engine
}

func (a *Authenticator) successPage() page {
	return page{
		Lang:  a.texts.Language(),
		Title: a.texts.T(i18n.MsgAuthSuccessTitle),
		Body:  a.texts.T(i18n.MsgAuthSuccessBody),
		Mark:  "✓",
		Color: "#16a34a",
	}
}

func (a *Authenticator) failurePage() page {
	return page{
		Lang:  a.texts.Language(),
		Title: a.texts.T(i18n.MsgAuthFailureTitle),
		Body:  a.texts.T(i18n.MsgAuthFailureBody),
		Mark:  "✕",
		Color: "#dc2626",
	}
}

func (a *Authenticator) setState(s State) {
	a.state.Store(int32(s))
}

func (a *Authenticator) finish(s State) {
	a.setState(s)
	metrics.RecordAuthFlow(s.String())
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
