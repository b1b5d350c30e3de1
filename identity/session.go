package identity

import (
	"github.com/gin-contrib/sessions"
)

// SessionStore keeps device state in a gin session, so a signed cookie plays the part of browser storage.
// Every write is saved right away; it must happen before the response body is written.
type SessionStore struct {
	Session sessions.Session
}

func (s *SessionStore) Get(key string) (string, bool) {
	v, ok := s.Session.Get(key).(string)
	return v, ok
}

func (s *SessionStore) Set(key, value string) error {
	s.Session.Set(key, value)
	return s.Session.Save()
}

func (s *SessionStore) Delete(key string) error {
	s.Session.Delete(key)
	return s.Session.Save()
}
