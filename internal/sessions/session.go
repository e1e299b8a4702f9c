package sessions

import (
	"crypto/sha256"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
)

const adminIDKey = "admin_id"

// Options — параметры куки сессии.
func Options(maxAge int, secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode, // кука по GET тоже отправится
		Secure:   secure,               // только HTTPS в проде
	}
}

// Делаем 2 ключа из одного секрета: подпись + шифрование.
// Длины подходящие для securecookie.
func keyPair(secret string) ([]byte, []byte) {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))
	return h[:], e[:]
}

// NewCookieStore — всё состояние сессии лежит в подписанной и зашифрованной куке.
// Destroy здесь только просит браузер стереть куку: её копия живёт до MaxAge.
func NewCookieStore(secret string, opts *sessions.Options) *sessions.CookieStore {
	h, e := keyPair(secret)
	store := sessions.NewCookieStore(h, e)
	store.Options = opts
	store.MaxAge(opts.MaxAge) // срок и в куке, и в securecookie
	return store
}

// NewFilesystemStore — сессии на сервере, в куке только id.
// Пустой dir — os.TempDir().
func NewFilesystemStore(dir, secret string, opts *sessions.Options) (*sessions.FilesystemStore, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	h, e := keyPair(secret)
	store := sessions.NewFilesystemStore(dir, h, e)
	store.Options = opts
	store.MaxAge(opts.MaxAge)
	return store, nil
}

// Manager выдаёт, проверяет и уничтожает сессию администратора.
type Manager struct {
	store sessions.Store
	name  string
}

func NewManager(store sessions.Store, name string) *Manager {
	return &Manager{store: store, name: name}
}

// get: битая или чужая кука не ошибка, gorilla в этом случае отдаёт новую сессию.
func (m *Manager) get(r *http.Request) (*sessions.Session, error) {
	s, err := m.store.Get(r, m.name)
	if s == nil {
		return nil, err
	}
	return s, nil
}

// Start привязывает сессию к администратору и выставляет Set-Cookie.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request, adminID int) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	s.Values[adminIDKey] = adminID
	return s.Save(r, w)
}

func (m *Manager) AdminID(r *http.Request) (int, bool) {
	s, err := m.get(r)
	if err != nil {
		return 0, false
	}
	id, ok := s.Values[adminIDKey].(int)
	return id, ok
}

func (m *Manager) IsAuthenticated(r *http.Request) bool {
	_, ok := m.AdminID(r)
	return ok
}

// Allow — реализация middleware.AuthGate.
func (m *Manager) Allow(r *http.Request) bool {
	return m.IsAuthenticated(r)
}

// Destroy удаляет сессию в хранилище и просит браузер стереть куку.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	for k := range s.Values {
		delete(s.Values, k)
	}
	if s.Options == nil {
		s.Options = &sessions.Options{Path: "/"}
	}
	s.Options.MaxAge = -1
	return s.Save(r, w)
}
