package middleware

import (
	"net/http"
)

const LoginPath = "/admin/login"

// AuthGate решает, пускать ли запрос дальше. Реализован sessions.Manager.
type AuthGate interface {
	Allow(r *http.Request) bool
}

// RequireLogin — chi-совместимая мидлварь:
// g.Use(middleware.RequireLogin(sm))
// Без сессии всегда редирект на логин, в том числе для JSON API.
func RequireLogin(gate AuthGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Allow(r) {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
