package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// SessionManager runs the login and logout flows against the admin API and
// keeps the local session and its persisted copy in step.
type SessionManager struct {
	auth      admin.AuthClient
	session   *admin.Session
	persister admin.SessionPersister
	logger    admin.Logger
	validate  *validator.Validate
	mutex     sync.Mutex
}

// NewSessionManager creates a session manager. persister may be nil, in which
// case nothing outlives the process.
func NewSessionManager(auth admin.AuthClient, session *admin.Session, persister admin.SessionPersister) *SessionManager {
	if session == nil {
		session = admin.NewSession()
	}

	return &SessionManager{
		auth:      auth,
		session:   session,
		persister: persister,
		validate:  newValidator(),
	}
}

// SetLogger sets the logger that receives persistence warnings. Login and
// Logout do not fail when the session cannot be saved.
func (m *SessionManager) SetLogger(logger admin.Logger) {
	m.logger = logger
}

// Session returns the managed session.
func (m *SessionManager) Session() *admin.Session {
	return m.session
}

// Restore loads the persisted snapshot into the session.
func (m *SessionManager) Restore(ctx context.Context) error {
	if m.persister == nil {
		return nil
	}

	snapshot, err := m.persister.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	if snapshot == nil {
		return nil
	}

	if snapshot.LoggedIn {
		m.session.Authenticate()
	} else {
		m.session.Revoke()
	}

	if snapshot.User.IsZero() {
		m.session.ResetUser()
	} else {
		m.session.SetUser(snapshot.User)
	}

	return nil
}

// Persist saves the current session through the persister.
func (m *SessionManager) Persist(ctx context.Context) error {
	if m.persister == nil {
		return nil
	}

	err := m.persister.SaveSession(ctx, m.session.Snapshot())
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	return nil
}

// Login validates the credentials, primes the CSRF cookie, signs in and
// caches the returned operator profile. The profile is zero when the backend
// does not return a user.
func (m *SessionManager) Login(ctx context.Context, credentials *admin.LoginRequest) (admin.UserProfile, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := ValidateLogin(m.validate, credentials)
	if err != nil {
		return admin.UserProfile{}, err
	}

	err = m.auth.CSRFCookie(ctx)
	if err != nil {
		return admin.UserProfile{}, err
	}

	user, err := m.auth.Login(ctx, credentials)
	if err != nil {
		return admin.UserProfile{}, err
	}

	m.session.Authenticate()

	if user != nil {
		m.session.SetUser(user.UserProfile())
	} else {
		m.session.SetUser(admin.UserProfile{Email: credentials.Email})
	}

	m.persistOrWarn(ctx)

	return m.session.User(), nil
}

// Logout signs out. The local session is cleared even when the backend call
// fails; the backend error is still returned.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.auth.Logout(ctx)

	m.session.Revoke()
	m.session.ResetUser()
	m.persistOrWarn(ctx)

	if err != nil && !admin.IsUnauthorized(err) {
		return err
	}

	return nil
}

// RequireLogin fails with admin.ErrNotLoggedIn when no session is active.
func (m *SessionManager) RequireLogin() error {
	if !m.session.IsLoggedIn() {
		return admin.ErrNotLoggedIn
	}

	return nil
}

// RequireLoggedOut fails with admin.ErrAlreadyLoggedIn when a session is active.
func (m *SessionManager) RequireLoggedOut() error {
	if m.session.IsLoggedIn() {
		return admin.ErrAlreadyLoggedIn
	}

	return nil
}

func (m *SessionManager) persistOrWarn(ctx context.Context) {
	persistErr := m.Persist(ctx)
	if persistErr != nil && m.logger != nil {
		m.logger.Warn("failed to persist session", map[string]interface{}{
			"error": persistErr.Error(),
		})
	}
}
