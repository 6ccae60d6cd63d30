// Package mailer implements the notification side-channel of the API.
//
// The contract is deliberately soft: Send never returns a Go error and never
// panics. Every call produces an Outcome — Delivered, Simulated when the
// provider is not configured, or Failed with a reason — and the caller is free
// to ignore it. A registration, adoption or status update must succeed even
// when the mail provider is down, misconfigured, or slow.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// OperatorMailbox receives a copy of every notification when CopyOperator is
// enabled.
const OperatorMailbox = "varaldossonhossp@gmail.com"

// DefaultTimeout bounds how long a Send waits on the provider before
// reporting a timeout outcome.
const DefaultTimeout = 5 * time.Second

// OutcomeKind classifies the result of a Send.
type OutcomeKind int

const (
	// Delivered means the provider accepted the message.
	Delivered OutcomeKind = iota
	// Simulated means no delivery was attempted because the provider is not
	// configured; the call is logged and treated as successful.
	Simulated
	// Failed means the provider was configured but rejected the message or
	// timed out.
	Failed
)

// String returns the lowercase name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Delivered:
		return "delivered"
	case Simulated:
		return "simulated"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of a Send. Detail carries the failure reason, if any.
type Outcome struct {
	Kind   OutcomeKind
	Detail string
}

// Sender delivers a message to one or more recipients.
type Sender interface {
	Send(ctx context.Context, to []string, subject, body string) Outcome
}

// Provider is the transport behind the Mailer. Implementations may block; the
// Mailer bounds the wait.
type Provider interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// Config holds mail provider settings. Endpoint and APIKey empty means the
// provider is unconfigured and every Send is simulated.
type Config struct {
	Endpoint     string
	APIKey       string
	From         string
	CopyOperator bool
	Timeout      time.Duration
}

// Mailer implements Sender over an optional Provider.
type Mailer struct {
	provider Provider
	cfg      Config
}

// New creates a Mailer. When the config names no provider endpoint or key the
// mailer runs in simulated mode.
func New(cfg Config) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	m := &Mailer{cfg: cfg}
	if cfg.Endpoint != "" && cfg.APIKey != "" {
		m.provider = &httpProvider{
			endpoint: cfg.Endpoint,
			apiKey:   cfg.APIKey,
			from:     cfg.From,
			client:   &http.Client{},
		}
	}
	return m
}

// NewWithProvider creates a Mailer over an explicit provider. Used by tests
// and by callers that bring their own transport.
func NewWithProvider(provider Provider, cfg Config) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Mailer{provider: provider, cfg: cfg}
}

// Send delivers a message to the recipients, waiting at most the configured
// timeout. The outcome is logged here so callers can fire and forget.
func (m *Mailer) Send(ctx context.Context, to []string, subject, body string) Outcome {
	recipients := m.recipients(to)

	if m.provider == nil {
		slog.Info("mail simulated: provider not configured",
			slog.Any("to", recipients),
			slog.String("subject", subject),
		)
		return Outcome{Kind: Simulated}
	}

	// The provider call is detached from the request's cancellation: the
	// timeout below abandons the wait but the delivery attempt runs on.
	done := make(chan error, 1)
	go func() {
		done <- m.provider.Send(context.WithoutCancel(ctx), recipients, subject, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("mail delivery failed",
				slog.Any("to", recipients),
				slog.String("subject", subject),
				slog.String("error", err.Error()),
			)
			return Outcome{Kind: Failed, Detail: err.Error()}
		}
		slog.Info("mail delivered",
			slog.Any("to", recipients),
			slog.String("subject", subject),
		)
		return Outcome{Kind: Delivered}
	case <-time.After(m.cfg.Timeout):
		slog.Error("mail delivery timed out",
			slog.Any("to", recipients),
			slog.String("subject", subject),
			slog.Duration("timeout", m.cfg.Timeout),
		)
		return Outcome{Kind: Failed, Detail: "timeout"}
	}
}

// recipients copies the addressee list, appending the operator mailbox when
// the copy mode is on and it is not already present.
func (m *Mailer) recipients(to []string) []string {
	out := append([]string(nil), to...)
	if !m.cfg.CopyOperator {
		return out
	}
	for _, addr := range out {
		if addr == OperatorMailbox {
			return out
		}
	}
	return append(out, OperatorMailbox)
}

// httpProvider posts messages to an HTTP mail relay.
type httpProvider struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

type mailPayload struct {
	From    string   `json:"from,omitempty"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (p *httpProvider) Send(ctx context.Context, to []string, subject, body string) error {
	payload, err := json.Marshal(mailPayload{
		From:    p.from,
		To:      to,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("encoding mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting mail: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail provider returned %s", resp.Status)
	}
	return nil
}
