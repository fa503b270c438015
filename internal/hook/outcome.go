package hook

import (
	"fmt"
	"strings"
)

// Decision is a permission decision for a PreToolUse hook.
type Decision string

const (
	// Allow lets the tool run.
	Allow Decision = "allow"
	// Deny blocks the tool.
	Deny Decision = "deny"
	// Ask defers the decision to the user.
	Ask Decision = "ask"
)

// ParseDecision converts configuration text into a Decision.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(s))); d {
	case Allow, Deny, Ask:
		return d, nil
	default:
		return "", fmt.Errorf("unknown permission decision %q (expected allow, deny or ask)", s)
	}
}

// OutcomeKind tags a handler Outcome.
type OutcomeKind int

const (
	// OutcomeSuccess means the handler ran without error.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeError means the handler failed or could not be resolved.
	OutcomeError
	// OutcomeInteractive carries a permission decision.
	OutcomeInteractive
)

// String returns the kind name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	case OutcomeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Outcome is the result of running one matched handler.
type Outcome struct {
	Kind    OutcomeKind
	Handler string

	// Message is set for OutcomeError and already carries the handler name.
	Message string

	// Decision and Reason are set for OutcomeInteractive.
	Decision Decision
	Reason   string
}

// Success builds a success outcome.
func Success(handler string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Handler: handler}
}

// Failure builds an error outcome attributed to handler.
func Failure(handler string, err error) Outcome {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Outcome{
		Kind:    OutcomeError,
		Handler: handler,
		Message: fmt.Sprintf("%s: %s", handler, msg),
	}
}

// Interactive builds an outcome carrying a permission decision.
func Interactive(handler string, decision Decision, reason string) Outcome {
	return Outcome{
		Kind:     OutcomeInteractive,
		Handler:  handler,
		Decision: decision,
		Reason:   reason,
	}
}

// Summary counts outcomes by kind.
type Summary struct {
	Succeeded   int
	Failed      int
	Interactive int
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeSuccess:
			s.Succeeded++
		case OutcomeError:
			s.Failed++
		case OutcomeInteractive:
			s.Interactive++
		}
	}
	return s
}
