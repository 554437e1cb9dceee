package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/bioadmin/internal/client/models"
	"github.com/dmitrijs2005/bioadmin/internal/common"
)

// RESTClient is the HTTPS+JSON implementation of Client. It owns one
// long-lived http.Client (connection reuse across operations) and one
// Session per instance. Sessions are never shared between instances.
type RESTClient struct {
	baseURL string
	http    *http.Client
	session *Session
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient builds a client for the API rooted at baseURL
// (e.g. "https://10.0.0.5"). timeout bounds every request end to end;
// insecureSkipVerify disables certificate verification for appliances
// with self-signed certificates.
func NewRESTClient(baseURL string, timeout time.Duration, insecureSkipVerify bool) *RESTClient {
	transport := http.DefaultTransport
	if insecureSkipVerify {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		transport = t
	}
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{Transport: transport, Timeout: timeout},
		session: &Session{},
	}
}

// Login authenticates and stores the session token extracted from the
// response headers. Any previously held token is dropped first, and the
// credentials' secret is wiped unconditionally before returning.
func (c *RESTClient) Login(ctx context.Context, creds *models.Credentials) error {
	defer creds.Wipe()

	c.session.Clear()

	body, err := loginBody(creds)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if !isSuccess(resp.StatusCode) {
		return &AuthError{Reason: AuthRejected, Status: resp.StatusCode, Body: string(raw)}
	}

	token := resp.Header.Get(common.SessionHeaderName)
	if token == "" {
		return &AuthError{Reason: AuthMissingToken, Status: resp.StatusCode}
	}

	c.session.Set(token)
	return nil
}

// ListUsers fetches one directory page. The query always carries the fixed
// ordering directive and last_modified marker in addition to q.
func (c *RESTClient) ListUsers(ctx context.Context, q models.UserQuery) (*models.UserCollectionResult, error) {
	raw, err := c.send(ctx, http.MethodGet, usersPath, listUsersQuery(q), nil)
	if err != nil {
		return nil, err
	}
	return decodeUserCollection(raw)
}

// CreateUser validates r locally, then posts it. On success the created
// user id is echoed back from the request.
func (c *RESTClient) CreateUser(ctx context.Context, r *models.NewUserRequest) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	body, err := createUserBody(r)
	if err != nil {
		return "", err
	}

	if _, err := c.send(ctx, http.MethodPost, usersPath, nil, body); err != nil {
		return "", err
	}
	return r.UserID, nil
}

// Logout drops the session token. There is no server round-trip.
func (c *RESTClient) Logout() {
	c.session.Clear()
}

// IsAuthenticated reports whether a session token is held.
func (c *RESTClient) IsAuthenticated() bool {
	return c.session.Active()
}

// Close releases idle connections held by the underlying transport.
func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// send performs one authenticated exchange and returns the raw response
// body. It fails fast with ErrNotAuthenticated when no session exists,
// clears the session and returns ErrSessionExpired on 401, and classifies
// the remaining failures as NetworkError or ServerError.
func (c *RESTClient) send(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	if !c.session.Active() {
		return nil, ErrNotAuthenticated
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.session.Attach(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		return nil, ErrSessionExpired
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &ServerError{Status: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}
