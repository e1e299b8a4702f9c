package handlers

import (
	"net/http"

	mw "N8NAdmin/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter собирает все маршруты. Других нет: остальное — 404 chi.
func NewRouter(h *Handlers, gate mw.AuthGate, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()

	// базовые middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(middleware.Recoverer)

	// неизвестный метод на известном пути — тоже 404, не 405
	r.MethodNotAllowed(http.NotFound)

	// ---------- Аутентификация администратора ----------
	r.Get("/admin/login", h.ShowLoginPage)
	r.Post("/admin/login", h.HandleLogin)
	r.Post("/admin/logout", h.HandleLogout)

	// ---------- Только с валидной сессией ----------
	r.Group(func(g chi.Router) {
		g.Use(mw.RequireLogin(gate))

		g.Get("/admin", h.ShowAdminPage)
		g.Post("/api/n8n/workflows/{id}/toggle", h.ToggleWorkflow)
	})

	return r
}
