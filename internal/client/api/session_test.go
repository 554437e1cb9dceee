package api

import (
	"net/http"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bioadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "https://example.test/api/users", nil)
	require.NoError(t, err)
	return req
}

func TestSession_SetClearActive(t *testing.T) {
	s := &Session{}
	assert.False(t, s.Active())

	s.Set("abc123")
	assert.True(t, s.Active())

	s.Clear()
	assert.False(t, s.Active())
}

func TestSession_Attach_WithToken(t *testing.T) {
	s := &Session{}
	s.Set("abc123")

	req := newRequest(t)
	s.Attach(req)

	assert.Equal(t, "abc123", req.Header.Get(common.SessionHeaderName))
}

func TestSession_Attach_WithoutToken_LeavesRequestUnchanged(t *testing.T) {
	s := &Session{}

	req := newRequest(t)
	s.Attach(req)

	_, present := req.Header[http.CanonicalHeaderKey(common.SessionHeaderName)]
	assert.False(t, present)
}

func TestSession_Set_ReplacesPreviousToken(t *testing.T) {
	s := &Session{}
	s.Set("old")
	s.Set("new")

	req := newRequest(t)
	s.Attach(req)
	assert.Equal(t, "new", req.Header.Get(common.SessionHeaderName))
}

// Concurrent mutation must never produce a torn read; under -race this test
// also verifies the critical section around the token.
func TestSession_ConcurrentAccess(t *testing.T) {
	s := &Session{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			s.Set("abc123")
		}()
		go func() {
			defer wg.Done()
			s.Clear()
		}()
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodGet, "https://example.test/", nil)
			s.Attach(req)
			got := req.Header.Get(common.SessionHeaderName)
			if got != "" && got != "abc123" {
				t.Errorf("observed torn token %q", got)
			}
		}()
	}
	wg.Wait()
}
