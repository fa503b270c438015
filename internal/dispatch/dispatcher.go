// Package dispatch runs the configured handlers that match a hook event.
// Dispatcher fans matched handlers out concurrently and collects one outcome
// per handler, in configuration order.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/boopifier/boopifier/internal/config"
	"github.com/boopifier/boopifier/internal/debuglog"
	clierrors "github.com/boopifier/boopifier/internal/errors"
	"github.com/boopifier/boopifier/internal/event"
	"github.com/boopifier/boopifier/internal/hook"
	"github.com/boopifier/boopifier/internal/match"
	"github.com/boopifier/boopifier/internal/notify"
	"golang.org/x/sync/errgroup"
)

// Registry resolves handler type names. *notify.Registry satisfies it.
type Registry interface {
	Lookup(handlerType string) (notify.Handler, bool)
}

// Dispatcher orchestrates concurrent handler execution for one event.
type Dispatcher struct {
	registry    Registry
	maxParallel int // 0 means one goroutine per matched handler
	logf        func(format string, args ...any)
}

// Option is a functional option for configuring Dispatcher.
type Option func(*Dispatcher)

// WithMaxParallel bounds how many handlers run at once.
func WithMaxParallel(n int) Option {
	return func(d *Dispatcher) {
		d.maxParallel = n
	}
}

// WithLogger sends dispatch diagnostics to l.
func WithLogger(l *debuglog.Logger) Option {
	return func(d *Dispatcher) {
		d.logf = l.WithPrefix("dispatch")
	}
}

// New creates a Dispatcher resolving handler types through registry.
func New(registry Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logf:     func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// task is a matched handler waiting to run in slot.
type task struct {
	slot    int
	cfg     config.HandlerConfig
	handler notify.Handler
}

// Dispatch evaluates every handler's match rule against ev, runs the matching
// ones concurrently and waits for all of them. The result holds one outcome
// per matched handler in configuration order. A handler whose type is not
// registered yields an error outcome without stopping the others.
func (d *Dispatcher) Dispatch(ctx context.Context, handlers []config.HandlerConfig, ev event.Event) []hook.Outcome {
	var (
		outcomes []hook.Outcome
		tasks    []task
	)

	for _, h := range handlers {
		if !match.Matches(ev, h.Rule, h.Mode) {
			d.logf("handler %q (%s) skipped: rules did not match", h.Name, h.Type)
			continue
		}

		slot := len(outcomes)
		handler, ok := d.registry.Lookup(h.Type)
		if !ok {
			outcomes = append(outcomes, hook.Failure(h.Name, clierrors.UnknownHandlerType(h.Type)))
			d.logf("handler %q: unknown type %q", h.Name, h.Type)
			continue
		}

		outcomes = append(outcomes, hook.Outcome{})
		tasks = append(tasks, task{slot: slot, cfg: h, handler: handler})
	}

	if len(tasks) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if d.maxParallel > 0 {
		g.SetLimit(d.maxParallel)
	}

	for _, t := range tasks {
		g.Go(func() error {
			outcomes[t.slot] = d.run(ctx, t, ev)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// run executes one handler, turning errors and panics into outcomes.
func (d *Dispatcher) run(ctx context.Context, t task, ev event.Event) (outcome hook.Outcome) {
	name := t.cfg.Name
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			outcome = hook.Failure(name, clierrors.NewHandlerError(fmt.Sprintf("handler panicked: %v", r)))
		}
		d.logf("handler %q (%s) finished in %s: %s", name, t.cfg.Type, time.Since(start).Round(time.Millisecond), describe(outcome))
	}()

	cfg := notify.Config(t.cfg.Clone())

	if decider, ok := t.handler.(notify.Decider); ok {
		decision, reason, err := decider.Decide(ctx, ev, cfg)
		if err != nil {
			return hook.Failure(name, clierrors.Wrap(err, clierrors.Handler))
		}
		return hook.Interactive(name, decision, reason)
	}

	if err := t.handler.Handle(ctx, ev, cfg); err != nil {
		return hook.Failure(name, clierrors.Wrap(err, clierrors.Handler))
	}
	return hook.Success(name)
}

func describe(o hook.Outcome) string {
	switch o.Kind {
	case hook.OutcomeError:
		return "error: " + o.Message
	case hook.OutcomeInteractive:
		return fmt.Sprintf("decision %s", o.Decision)
	default:
		return o.Kind.String()
	}
}
