package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// ===============================
// Notificador externo (SMS/WhatsApp via webhook)
// ===============================

type Message struct {
	AppointmentID uint   `json:"appointment_id"`
	Kind          string `json:"kind"`
	Recipient     string `json:"recipient"`
	Body          string `json:"body"`
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
	ProviderID() string
}

// --------- Webhook ---------

type WebhookNotifier struct {
	url   string
	token string
	http  *http.Client
}

func NewWebhookNotifier(url string, token string) *WebhookNotifier {
	return &WebhookNotifier{
		url:   strings.TrimSpace(url),
		token: strings.TrimSpace(token),
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (n *WebhookNotifier) ProviderID() string {
	return "webhook"
}

func (n *WebhookNotifier) Send(ctx context.Context, msg Message) error {
	if n.url == "" {
		return errors.New("notifier webhook url not configured")
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("notifier webhook returned non-2xx")
	}
	return nil
}

// --------- Noop (dev / testes) ---------

type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) ProviderID() string {
	return "noop"
}

func (n *NoopNotifier) Send(_ context.Context, _ Message) error {
	return nil
}
