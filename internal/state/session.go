// Package state holds the client-side session and task collection. Both
// containers are safe for concurrent use; derived values are recomputed on
// every read.
package state

import (
	"sync"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

// Session tracks the single authenticated identity.
type Session struct {
	mu      sync.RWMutex
	user    *model.User
	loading bool
	err     *string
}

func NewSession() *Session {
	return &Session{}
}

// SetUser replaces the identity and clears the error slot. A nil user logs
// the session out without touching the loading flag.
func (s *Session) SetUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
	} else {
		cp := *u
		s.user = &cp
	}
	s.err = nil
}

// Clear resets identity, loading flag and error slot in one step.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.loading = false
	s.err = nil
}

func (s *Session) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *Session) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = &msg
}

func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

// CurrentUser returns a copy of the identity, or nil when logged out.
func (s *Session) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Email
}

func (s *Session) UserID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return "", false
	}
	return s.user.ID, true
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) Error() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err == nil {
		return "", false
	}
	return *s.err, true
}
