package sessions

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testName = "admin_session"

func newCookieManager() *Manager {
	return NewManager(NewCookieStore("test-secret", Options(3600, false)), testName)
}

// withCookies переносит Set-Cookie из ответа в новый запрос.
func withCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestManager_StartAndAuthenticate(t *testing.T) {
	m := newCookieManager()

	assert.False(t, m.IsAuthenticated(httptest.NewRequest(http.MethodGet, "/admin", nil)))

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil), 42))

	c := findCookie(rec, testName)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, "/", c.Path)

	req := withCookies(rec)
	id, ok := m.AdminID(req)
	assert.True(t, ok)
	assert.Equal(t, 42, id)
	assert.True(t, m.Allow(req))
}

func TestManager_SecureCookie(t *testing.T) {
	m := NewManager(NewCookieStore("test-secret", Options(3600, true)), testName)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil), 1))

	c := findCookie(rec, testName)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
}

func TestManager_ForeignSecret(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, newCookieManager().Start(rec, httptest.NewRequest(http.MethodPost, "/", nil), 7))

	other := NewManager(NewCookieStore("another-secret", Options(3600, false)), testName)
	assert.False(t, other.IsAuthenticated(withCookies(rec)))
}

func TestManager_Destroy(t *testing.T) {
	m := newCookieManager()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/", nil), 7))

	out := httptest.NewRecorder()
	require.NoError(t, m.Destroy(out, withCookies(rec)))

	c := findCookie(out, testName)
	require.NotNil(t, c)
	assert.True(t, c.MaxAge < 0)
	assert.False(t, m.IsAuthenticated(withCookies(out)))
}

func TestManager_FilesystemStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	store, err := NewFilesystemStore(dir, "test-secret", Options(3600, false))
	require.NoError(t, err)
	m := NewManager(store, testName)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Start(rec, httptest.NewRequest(http.MethodPost, "/", nil), 3))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	req := withCookies(rec)
	id, ok := m.AdminID(req)
	require.True(t, ok)
	assert.Equal(t, 3, id)

	out := httptest.NewRecorder()
	require.NoError(t, m.Destroy(out, withCookies(rec)))

	files, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.False(t, m.IsAuthenticated(withCookies(rec)))
}

type brokenStore struct{}

func (brokenStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(brokenStore{}, name)
}

func (brokenStore) New(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.NewSession(brokenStore{}, name), nil
}

func (brokenStore) Save(r *http.Request, w http.ResponseWriter, s *sessions.Session) error {
	return errors.New("store unavailable")
}

func TestManager_DestroyError(t *testing.T) {
	m := NewManager(brokenStore{}, testName)

	err := m.Destroy(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/logout", nil))
	require.Error(t, err)
}
