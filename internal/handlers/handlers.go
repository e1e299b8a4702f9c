package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"N8NAdmin/internal/auth"
	"N8NAdmin/internal/models"
	"N8NAdmin/internal/sessions"

	"github.com/sirupsen/logrus"
)

// AdminFinder — поиск администратора по логину (db.AdminStore).
type AdminFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.Administrator, error)
}

// WorkflowToggler — включение/выключение workflow (n8n.Client).
type WorkflowToggler interface {
	Toggle(ctx context.Context, workflowID string, active bool) error
}

type Handlers struct {
	admins   AdminFinder
	verifier *auth.Verifier
	sessions *sessions.Manager
	n8n      WorkflowToggler
	webDir   string
	log      logrus.FieldLogger
}

func New(admins AdminFinder, verifier *auth.Verifier, sm *sessions.Manager, n8n WorkflowToggler, webDir string, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		admins:   admins,
		verifier: verifier,
		sessions: sm,
		n8n:      n8n,
		webDir:   webDir,
		log:      log,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
