package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/net/publicsuffix"

	"github.com/fivetwenty-io/gameadmin/internal/auth"
	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/internal/notify"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
	"github.com/fivetwenty-io/gameadmin/pkg/gameclient"
)

// sessionContext is everything a command needs to talk to one API: the
// client, the session manager, the toast queue and the state persisted
// between runs.
type sessionContext struct {
	name        string
	apiConfig   *APIConfig
	endpointURL *url.URL
	jar         http.CookieJar
	client      admin.Client
	manager     *auth.SessionManager
	persister   *ConfigPersister
	toasts      *admin.ToastQueue
	dispatcher  *notify.Dispatcher
	natsConn    *nats.Conn
	stderr      io.Writer
}

// openSession builds the client for the API selected by --api or the current
// API and restores its session and cookies.
func openSession(cmd *cobra.Command) (*sessionContext, error) {
	ctx := cmd.Context()
	config := loadConfig()

	name, err := resolveAPIName(config, viper.GetString("api"))
	if err != nil {
		return nil, err
	}

	apiConfig := config.APIs[name]
	endpoint := gameclient.NormalizeEndpoint(apiConfig.Endpoint)

	endpointURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidEndpoint, endpoint)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	jar.SetCookies(endpointURL, restoreCookies(apiConfig.Cookies))

	noColor := viper.GetBool("no_color")
	verbose := viper.GetBool("verbose")

	clientConfig := &admin.Config{
		APIEndpoint:   endpoint,
		Jar:           jar,
		Debug:         verbose,
		SkipTLSVerify: apiConfig.SkipSSLValidation || viper.GetBool("skip_ssl_validation"),
		RetryMax:      viper.GetInt("retries"),
		UserAgent:     "gamectl/" + cmd.Root().Version,
	}

	if verbose {
		clientConfig.Logger = newStderrLogger(cmd.ErrOrStderr(), noColor)
	}

	client, err := gameclient.New(ctx, clientConfig)
	if err != nil {
		return nil, err
	}

	persister := NewConfigPersister(name)
	manager := auth.NewSessionManager(client.Auth(), client.Session(), persister)
	manager.SetLogger(newStderrLogger(cmd.ErrOrStderr(), noColor))

	err = manager.Restore(ctx)
	if err != nil {
		return nil, err
	}

	session := &sessionContext{
		name:        name,
		apiConfig:   apiConfig,
		endpointURL: endpointURL,
		jar:         jar,
		client:      client,
		manager:     manager,
		persister:   persister,
		toasts:      admin.NewToastQueue(0),
		stderr:      cmd.ErrOrStderr(),
	}

	session.attachSinks(ctx, noColor)

	return session, nil
}

func (s *sessionContext) attachSinks(ctx context.Context, noColor bool) {
	sinks := []notify.Sink{notify.NewTerminalSink(s.stderr, noColor)}

	natsURL := viper.GetString("nats_url")
	if natsURL != "" {
		conn, err := notify.ConnectNATS(natsURL, "gamectl")
		if err != nil {
			_, _ = fmt.Fprintf(s.stderr, "Warning: toasts will not be published: %v\n", err)
		} else {
			s.natsConn = conn
			sinks = append(sinks, notify.NewNATSSink(conn, "", s.name))
		}
	}

	s.dispatcher = notify.NewDispatcher(sinks...)
	s.dispatcher.Attach(ctx, s.toasts)
}

// requireLogin fails when the API has no active session.
func (s *sessionContext) requireLogin() error {
	err := s.manager.RequireLogin()
	if err != nil {
		return fmt.Errorf("%w to '%s', use 'gamectl login' first", err, s.name)
	}

	return nil
}

// close persists the session and its cookies and flushes pending toasts.
// Failures are reported as warnings.
func (s *sessionContext) close(ctx context.Context) {
	err := s.manager.Persist(ctx)
	if err != nil {
		s.warn("failed to persist session", err)
	}

	var cookies []StoredCookie
	if s.manager.Session().IsLoggedIn() {
		cookies = storeCookies(s.jar.Cookies(s.endpointURL))
	}

	err = s.persister.SaveCookies(cookies)
	if err != nil {
		s.warn("failed to persist cookies", err)
	}

	err = notify.Close(s.natsConn)
	if err != nil {
		s.warn("failed to flush toasts", err)
	}

	err = s.dispatcher.Err()
	if err != nil {
		s.warn("some toasts were not delivered", err)
	}
}

func (s *sessionContext) warn(message string, err error) {
	_, _ = fmt.Fprintf(s.stderr, "Warning: %s: %v\n", message, err)
}

// withSession opens a session, optionally enforces login, runs fn and closes
// the session.
func withSession(cmd *cobra.Command, loginRequired bool, fn func(ctx context.Context, session *sessionContext) error) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	defer session.close(ctx)

	if loginRequired {
		err = session.requireLogin()
		if err != nil {
			return err
		}
	}

	err = fn(ctx, session)
	if err != nil && admin.IsUnauthorized(err) {
		return fmt.Errorf("session expired, use 'gamectl login' again: %w", err)
	}

	return err
}

func restoreCookies(stored []StoredCookie) []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, cookie := range stored {
		cookies = append(cookies, &http.Cookie{Name: cookie.Name, Value: cookie.Value, Path: "/"})
	}

	return cookies
}

func storeCookies(cookies []*http.Cookie) []StoredCookie {
	stored := make([]StoredCookie, 0, len(cookies))
	for _, cookie := range cookies {
		stored = append(stored, StoredCookie{Name: cookie.Name, Value: cookie.Value})
	}

	return stored
}
