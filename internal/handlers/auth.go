package handlers

import (
	"net/http"
	"path/filepath"

	"N8NAdmin/internal/middleware"
)

const (
	msgInvalidCredentials = "Usuário ou senha inválidos."
	msgServerError        = "Erro no servidor"
)

// ShowLoginPage отдаёт статическую страницу входа
func (h *Handlers) ShowLoginPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "views", "login.html"))
}

// ShowAdminPage отдаёт админку (только с сессией)
func (h *Handlers) ShowAdminPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "public", "admin.html"))
}

// HandleLogin обрабатывает POST-запрос входа администратора.
// Неизвестный логин и неверный пароль дают одно и то же сообщение.
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.WithError(err).Warn("login: bad form")
		h.invalidCredentials(w)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		h.verifier.Verify(nil, password)
		h.invalidCredentials(w)
		return
	}

	admin, err := h.admins.FindByUsername(r.Context(), username)
	if err != nil {
		h.log.WithError(err).Error("login: administrator lookup failed")
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}

	// сверяем даже при admin == nil, см. auth.Verifier
	if !h.verifier.Verify(admin, password) {
		h.log.WithField("username", username).Info("login: invalid credentials")
		h.invalidCredentials(w)
		return
	}

	if err := h.sessions.Start(w, r, admin.ID); err != nil {
		h.log.WithError(err).Error("login: session save failed")
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}
	h.log.WithField("admin_id", admin.ID).Info("login: ok")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *Handlers) invalidCredentials(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(msgInvalidCredentials))
}

// HandleLogout удаляет сессию и возвращает на логин.
// Если хранилище сессий упало, состояние неизвестно: отправляем обратно в админку.
func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		h.log.WithError(err).Error("logout: session destroy failed")
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
}
