package api

import (
	"net/http"
	"sync"

	"github.com/dmitrijs2005/bioadmin/internal/common"
)

// Session holds the current session token for one client instance.
//
// Token mutation is a critical section: the design assumes sequential use,
// but if operations do overlap, readers observe either the pre- or the
// post-update token atomically, never a torn value. Last writer wins by
// operation completion order.
type Session struct {
	mu    sync.RWMutex
	token string
}

// Set stores a new token, replacing any previous one.
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the token. Subsequent Active calls report false.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Active reports whether a token is present.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Attach sets the session header on req if a token is present,
// and leaves the request unchanged otherwise.
func (s *Session) Attach(req *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token != "" {
		req.Header.Set(common.SessionHeaderName, s.token)
	}
}
