package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger — стандартный логгер chi, но пишет через logrus.
func RequestLogger(l logrus.FieldLogger) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&chimw.DefaultLogFormatter{Logger: l, NoColor: true})
}
