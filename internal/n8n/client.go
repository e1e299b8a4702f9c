// Package n8n проксирует команды activate/deactivate во внешний API n8n.
package n8n

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// сколько тела ответа n8n сохраняем для лога
const maxErrorBody = 4 << 10

// StatusError — n8n ответил не 2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("n8n: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client — без ретраев и без своих таймаутов, только то, что даёт транспорт.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient: httpClient == nil — http.DefaultClient.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// ToggleURL — {base}/{id}/{activate|deactivate}. id идёт одним сегментом пути.
func (c *Client) ToggleURL(workflowID string, active bool) string {
	action := "deactivate"
	if active {
		action = "activate"
	}
	return c.baseURL + "/" + url.PathEscape(workflowID) + "/" + action
}

// Toggle отправляет POST с пустым телом и ключом API в Authorization.
func (c *Client) Toggle(ctx context.Context, workflowID string, active bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ToggleURL(workflowID, active), http.NoBody)
	if err != nil {
		return fmt.Errorf("n8n: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("n8n: post %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// id входящего запроса (chi RequestID), иначе новый uuid
func requestID(ctx context.Context) string {
	if id := chimw.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
