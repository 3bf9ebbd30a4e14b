package admin

import (
	"context"
	"sync"
)

// UserProfile is the locally cached identity of the signed-in operator.
type UserProfile struct {
	ID       int    `json:"id"        yaml:"id"`
	Email    string `json:"email"     yaml:"email"`
	FullName string `json:"full_name" yaml:"full_name"`
	Role     string `json:"role"      yaml:"role"`
}

// IsZero reports whether no profile is cached.
func (p UserProfile) IsZero() bool {
	return p == UserProfile{}
}

// SessionSnapshot is the persisted form of a Session.
type SessionSnapshot struct {
	LoggedIn bool        `json:"logged_in" yaml:"logged_in"`
	User     UserProfile `json:"user"      yaml:"user"`
}

// SessionPersister saves and restores a session across process boundaries.
type SessionPersister interface {
	LoadSession(ctx context.Context) (*SessionSnapshot, error)
	SaveSession(ctx context.Context, snapshot *SessionSnapshot) error
}

// Session holds the logged-in flag and the cached operator profile.
//
// The flag mirrors the server-side session as far as the client knows: it is
// set after a successful login and cleared on logout or when the backend
// answers 401. Session is safe for concurrent use.
type Session struct {
	mutex    sync.RWMutex
	loggedIn bool
	user     UserProfile
}

// NewSession creates a logged-out session.
func NewSession() *Session {
	return &Session{}
}

// RestoreSession creates a session from a persisted snapshot. A nil snapshot
// yields a logged-out session.
func RestoreSession(snapshot *SessionSnapshot) *Session {
	session := NewSession()
	if snapshot != nil {
		session.loggedIn = snapshot.LoggedIn
		session.user = snapshot.User
	}

	return session
}

// Authenticate marks the session as logged in.
func (s *Session) Authenticate() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.loggedIn = true
}

// Revoke marks the session as logged out. The cached profile is kept; call
// ResetUser to clear it.
func (s *Session) Revoke() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.loggedIn = false
}

// IsLoggedIn reports the current flag.
func (s *Session) IsLoggedIn() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.loggedIn
}

// SetUser caches the operator profile.
func (s *Session) SetUser(user UserProfile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.user = user
}

// User returns the cached operator profile.
func (s *Session) User() UserProfile {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.user
}

// ResetUser clears the cached operator profile.
func (s *Session) ResetUser() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.user = UserProfile{}
}

// Snapshot returns the persistable state of the session.
func (s *Session) Snapshot() *SessionSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return &SessionSnapshot{
		LoggedIn: s.loggedIn,
		User:     s.user,
	}
}
