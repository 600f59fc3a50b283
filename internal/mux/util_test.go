package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blackjack-server/internal/session"
	"blackjack-server/pkg/blackjack"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type testServer struct {
	*httptest.Server
	game   *blackjack.Game
	store  *session.MemoryStore
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	game, err := blackjack.New(logrus.StandardLogger(), blackjack.DefaultOptions())
	assert.NoError(t, err)

	store := session.NewMemoryStore()
	ts := httptest.NewServer(NewMux("v0.0.0-test", game, store))
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	assert.NoError(t, err)

	return &testServer{
		Server: ts,
		game:   game,
		store:  store,
		client: &http.Client{Jar: jar},
	}
}

// setSession pins the client to a known session ID so tests can seed the
// store directly
func (s *testServer) setSession(t *testing.T, id string) {
	t.Helper()

	u, err := url.Parse(s.URL)
	assert.NoError(t, err)

	s.client.Jar.SetCookies(u, []*http.Cookie{{
		Name:  sessionCookie,
		Value: id,
	}})
}

func (s *testServer) assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := s.client.Do(req)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}

func (s *testServer) assertGet(t *testing.T, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	s.assertDo(t, req, respObj, statusCode)
}

func (s *testServer) assertPost(t *testing.T, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, s.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	s.assertDo(t, req, respObj, statusCode)
}
