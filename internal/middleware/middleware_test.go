package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type gateFunc func(r *http.Request) bool

func (f gateFunc) Allow(r *http.Request) bool { return f(r) }

func TestRequireLogin(t *testing.T) {
	tests := []struct {
		name       string
		allow      bool
		wantStatus int
		wantCalled bool
	}{
		{name: "anonymous is redirected", allow: false, wantStatus: http.StatusFound, wantCalled: false},
		{name: "logged in passes", allow: true, wantStatus: http.StatusTeapot, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})
			gate := gateFunc(func(*http.Request) bool { return tt.allow })

			rec := httptest.NewRecorder()
			RequireLogin(gate)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if !tt.allow {
				assert.Equal(t, LoginPath, rec.Header().Get("Location"))
			}
		})
	}
}
