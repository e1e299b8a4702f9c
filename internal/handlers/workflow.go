package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"N8NAdmin/internal/models"
	"N8NAdmin/internal/n8n"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	msgN8NFailure = "Falha ao comunicar com a API do n8n."
	msgBadRequest = "Requisição inválida."
)

// ToggleWorkflow — POST /api/n8n/workflows/{id}/toggle
// Тело: JSON {"active": true} или форма active=true.
func (h *Handlers) ToggleWorkflow(w http.ResponseWriter, r *http.Request) {
	active, err := parseActive(r)
	if err != nil {
		h.log.WithError(err).Warn("toggle: bad body")
		writeJSON(w, http.StatusBadRequest, models.ToggleResponse{Success: false, Message: msgBadRequest})
		return
	}
	// chi матчит по RawPath: %2F и прочее приходит нераскодированным
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		h.log.WithError(err).Warn("toggle: bad workflow id")
		writeJSON(w, http.StatusBadRequest, models.ToggleResponse{Success: false, Message: msgBadRequest})
		return
	}
	t := models.WorkflowToggle{WorkflowID: id, Active: active}

	// обрыв клиента не отменяет уже начатый вызов n8n
	ctx := context.WithoutCancel(r.Context())
	if err := h.n8n.Toggle(ctx, t.WorkflowID, t.Active); err != nil {
		entry := h.log.WithFields(logrus.Fields{"workflow_id": t.WorkflowID, "action": t.Action()})
		var se *n8n.StatusError
		if errors.As(err, &se) {
			entry = entry.WithFields(logrus.Fields{"status": se.StatusCode, "body": se.Body})
		}
		entry.WithError(err).Error("toggle: n8n call failed")
		writeJSON(w, http.StatusInternalServerError, models.ToggleResponse{Success: false, Message: msgN8NFailure})
		return
	}

	writeJSON(w, http.StatusOK, models.ToggleResponse{Success: true, Message: toggledMessage(t)})
}

func toggledMessage(t models.WorkflowToggle) string {
	state := "desativado"
	if t.Active {
		state = "ativado"
	}
	return fmt.Sprintf("Workflow %s foi %s.", t.WorkflowID, state)
}

func parseActive(r *http.Request) (bool, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		var body struct {
			Active any `json:"active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("decode json: %w", err)
		}
		return truthy(body.Active), nil
	}

	if err := r.ParseForm(); err != nil {
		return false, fmt.Errorf("parse form: %w", err)
	}
	return truthy(r.FormValue("active")), nil
}

// truthy: bool как есть, числа != 0, строки true/1/on/yes. Остальное — false.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "on", "yes":
			return true
		}
	}
	return false
}
