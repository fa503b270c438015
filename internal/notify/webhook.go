package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/boopifier/boopifier/internal/event"
	"github.com/google/uuid"
)

const (
	webhookTimeout     = 30 * time.Second
	webhookIdlePerHost = 10

	// HeaderDelivery carries a unique ID per delivery.
	HeaderDelivery = "X-Boopifier-Delivery"
	// HeaderEvent carries the hook_event_name of the delivered event.
	HeaderEvent = "X-Boopifier-Event"
	// HeaderSignature carries "sha256=<hex HMAC of the body>" when a secret is set.
	HeaderSignature = "X-Boopifier-Signature-256"
	signaturePrefix = "sha256="
)

// WebhookHandler POSTs the event to an HTTP endpoint.
//
// Config keys: url (required), type (json|slack|discord, default json),
// payload (json only: object or string template, default the whole event),
// text (slack), content (discord), channel (slack), username
// (slack/discord), headers (object), secret (HMAC-SHA256 signing key).
type WebhookHandler struct {
	userAgent string

	once   sync.Once
	client *http.Client
}

// NewWebhookHandler creates a WebhookHandler. A nil client is replaced by a
// shared client with a 30s timeout, built on first use.
func NewWebhookHandler(client *http.Client) *WebhookHandler {
	return newWebhookHandler(client, "")
}

func newWebhookHandler(client *http.Client, userAgent string) *WebhookHandler {
	return &WebhookHandler{client: client, userAgent: userAgent}
}

func (h *WebhookHandler) Type() string {
	return "webhook"
}

func (h *WebhookHandler) httpClient() *http.Client {
	h.once.Do(func() {
		if h.client != nil {
			return
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConnsPerHost = webhookIdlePerHost
		h.client = &http.Client{
			Timeout:   webhookTimeout,
			Transport: transport,
		}
	})
	return h.client
}

func (h *WebhookHandler) Handle(ctx context.Context, ev event.Event, cfg Config) error {
	url, err := cfg.Require("Webhook", "url")
	if err != nil {
		return err
	}

	payload, err := BuildWebhookPayload(cfg.String("type", "json"), ev, cfg)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	req.Header.Set(HeaderDelivery, uuid.NewString())
	req.Header.Set(HeaderEvent, ev.HookEventName())
	for k, v := range cfg.Map("headers") {
		req.Header.Set(k, Render(v, ev))
	}
	if secret, ok := cfg.Lookup("secret"); ok && secret != "" {
		req.Header.Set(HeaderSignature, signaturePrefix+Sign(secret, body))
	}

	resp, err := h.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook request failed with status: %s", resp.Status)
	}
	return nil
}

// BuildWebhookPayload builds the request body for payloadType. A custom json
// payload keeps its shape, so a string template produces a JSON string body.
func BuildWebhookPayload(payloadType string, ev event.Event, cfg Config) (any, error) {
	switch payloadType {
	case "slack":
		payload := map[string]any{
			"text": RenderField(cfg, "text", ev, "Claude Code Event: "+ev.JSON()),
		}
		if channel, ok := cfg.Lookup("channel"); ok {
			payload["channel"] = channel
		}
		if username, ok := cfg.Lookup("username"); ok {
			payload["username"] = username
		}
		return payload, nil

	case "discord":
		payload := map[string]any{
			"content": RenderField(cfg, "content", ev, "Claude Code Event: "+ev.JSON()),
		}
		if username, ok := cfg.Lookup("username"); ok {
			payload["username"] = username
		}
		return payload, nil

	case "json":
		custom, ok := cfg["payload"]
		if !ok {
			return map[string]any(ev), nil
		}
		return RenderValue(custom, ev), nil

	default:
		return nil, fmt.Errorf("unknown webhook type: %s", payloadType)
	}
}

// Sign returns the hex HMAC-SHA256 of body keyed with secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
