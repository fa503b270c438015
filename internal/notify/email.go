package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/boopifier/boopifier/internal/event"
	"github.com/wneessen/go-mail"
)

const (
	defaultSMTPPort = 25
	localSMTPPort   = 1025
	smtpsPort       = 465
	emailTimeout    = 30 * time.Second
)

// SMTPSettings describe how to reach the mail server.
type SMTPSettings struct {
	Server   string
	Port     int
	Username string
	Password string
}

// TLSPolicy picks transport security: none for local test servers
// (localhost, 127.0.0.1 or port 1025), implicit TLS on port 465 and
// mandatory STARTTLS everywhere else.
func (s SMTPSettings) TLSPolicy() (policy mail.TLSPolicy, implicitTLS bool) {
	switch {
	case s.Port == localSMTPPort || s.Server == "localhost" || s.Server == "127.0.0.1":
		return mail.NoTLS, false
	case s.Port == smtpsPort:
		return mail.TLSMandatory, true
	default:
		return mail.TLSMandatory, false
	}
}

// ClientOptions returns the go-mail client options for s.
func (s SMTPSettings) ClientOptions() []mail.Option {
	policy, implicitTLS := s.TLSPolicy()
	opts := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithTimeout(emailTimeout),
		mail.WithTLSPolicy(policy),
	}
	if implicitTLS {
		opts = append(opts, mail.WithSSL())
	}
	if s.Username != "" && s.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}
	return opts
}

type mailSendFunc func(ctx context.Context, s SMTPSettings, msg *mail.Msg) error

// EmailHandler sends a plain-text email over SMTP.
//
// Config keys: to, from, smtp_server (required), smtp_port (default 25),
// username and password (both needed for auth), subject (default "Claude
// Code Notification") and body ({{field}} templates).
type EmailHandler struct {
	send mailSendFunc
}

// NewEmailHandler creates an EmailHandler that dials the configured server.
func NewEmailHandler() *EmailHandler {
	return newEmailHandler(nil)
}

func newEmailHandler(send mailSendFunc) *EmailHandler {
	if send == nil {
		send = dialAndSend
	}
	return &EmailHandler{send: send}
}

func (h *EmailHandler) Type() string {
	return "email"
}

func (h *EmailHandler) Handle(ctx context.Context, ev event.Event, cfg Config) error {
	msg, settings, err := BuildEmail(ev, cfg)
	if err != nil {
		return err
	}
	if err := h.send(ctx, settings, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BuildEmail validates cfg and builds the message and server settings.
func BuildEmail(ev event.Event, cfg Config) (*mail.Msg, SMTPSettings, error) {
	var settings SMTPSettings

	to, err := cfg.Require("Email", "to")
	if err != nil {
		return nil, settings, err
	}
	from, err := cfg.Require("Email", "from")
	if err != nil {
		return nil, settings, err
	}
	server, err := cfg.Require("Email", "smtp_server")
	if err != nil {
		return nil, settings, err
	}

	settings = SMTPSettings{
		Server:   server,
		Port:     cfg.Int("smtp_port", defaultSMTPPort),
		Username: cfg.String("username", ""),
		Password: cfg.String("password", ""),
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, settings, fmt.Errorf("invalid 'from' address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, settings, fmt.Errorf("invalid 'to' address: %w", err)
	}
	msg.Subject(RenderField(cfg, "subject", ev, defaultSummary))
	msg.SetBodyString(mail.TypeTextPlain, RenderField(cfg, "body", ev, "Event: "+ev.JSON()))

	return msg, settings, nil
}

func dialAndSend(ctx context.Context, s SMTPSettings, msg *mail.Msg) error {
	client, err := mail.NewClient(s.Server, s.ClientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to configure SMTP client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
