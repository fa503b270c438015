package notify

import (
	"context"

	"github.com/boopifier/boopifier/internal/event"
	"github.com/boopifier/boopifier/internal/hook"
)

// DecisionHandler answers permission requests with a configured decision.
// Combined with match rules it acts as a simple PreToolUse policy.
//
// Config keys: decision (allow|deny|ask, required), reason ({{field}} template).
type DecisionHandler struct{}

// NewDecisionHandler creates a DecisionHandler.
func NewDecisionHandler() *DecisionHandler {
	return &DecisionHandler{}
}

func (h *DecisionHandler) Type() string {
	return "decision"
}

// Handle validates the configuration. The decision itself is returned by Decide.
func (h *DecisionHandler) Handle(ctx context.Context, ev event.Event, cfg Config) error {
	_, _, err := h.Decide(ctx, ev, cfg)
	return err
}

func (h *DecisionHandler) Decide(_ context.Context, ev event.Event, cfg Config) (hook.Decision, string, error) {
	raw, err := cfg.Require("Decision", "decision")
	if err != nil {
		return "", "", err
	}
	decision, err := hook.ParseDecision(raw)
	if err != nil {
		return "", "", err
	}
	return decision, RenderField(cfg, "reason", ev, ""), nil
}
