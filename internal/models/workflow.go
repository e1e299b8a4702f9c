package models

// WorkflowToggle — запрос на включение/выключение workflow в n8n. Нигде не хранится.
type WorkflowToggle struct {
	WorkflowID string
	Active     bool
}

// Action — сегмент пути во внешнем API n8n.
func (t WorkflowToggle) Action() string {
	if t.Active {
		return "activate"
	}
	return "deactivate"
}

// ToggleResponse — JSON-ответ /api/n8n/workflows/{id}/toggle
type ToggleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
