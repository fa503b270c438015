// Package runner processes one hook invocation: it loads the configuration,
// reads the event from stdin, dispatches it and builds the response.
//
// Every failure is reported through the response itself so the caller can
// always exit 0 and never block Claude Code.
package runner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/boopifier/boopifier/internal/config"
	"github.com/boopifier/boopifier/internal/debuglog"
	"github.com/boopifier/boopifier/internal/dispatch"
	clierrors "github.com/boopifier/boopifier/internal/errors"
	"github.com/boopifier/boopifier/internal/event"
	"github.com/boopifier/boopifier/internal/hook"
)

// Options select the configuration and project for a run.
type Options struct {
	// ConfigPath is an explicit configuration file. Empty auto-detects.
	ConfigPath string

	// ProjectDir is the active project ($CLAUDE_PROJECT_DIR). Empty means
	// no project is known.
	ProjectDir string

	// HomeDir holds the global .claude directory.
	HomeDir string

	// MaxParallel bounds concurrent handlers. 0 is unbounded.
	MaxParallel int
}

// Runner turns one event line into one hook response.
type Runner struct {
	opts       Options
	dispatcher *dispatch.Dispatcher
	logf       func(format string, args ...any)
	load       func(path string) (*config.Config, error)
}

// New creates a Runner. logger may be nil.
func New(opts Options, registry dispatch.Registry, logger *debuglog.Logger) *Runner {
	return &Runner{
		opts: opts,
		dispatcher: dispatch.New(registry,
			dispatch.WithLogger(logger),
			dispatch.WithMaxParallel(opts.MaxParallel),
		),
		logf: logger.WithPrefix("runner"),
		load: config.Load,
	}
}

// ConfigPath returns the configuration file this Runner uses.
func (r *Runner) ConfigPath() string {
	if r.opts.ConfigPath != "" {
		return r.opts.ConfigPath
	}
	return config.ResolvePath(r.opts.ProjectDir, r.opts.HomeDir).Path
}

// LoadConfig loads the configuration and applies project overrides when
// the project has no configuration file of its own.
func (r *Runner) LoadConfig() (*config.Config, error) {
	path := r.ConfigPath()
	if r.opts.ConfigPath != "" {
		r.logf("using config from --config: %s", path)
	} else {
		r.logf("auto-detected config: %s", path)
	}

	cfg, err := r.load(path)
	if err != nil {
		appErr := clierrors.ConfigLoadError(path, err)
		r.logf("failed to load config: %s", clierrors.FormatErrorPlain(appErr))
		return nil, appErr
	}

	if config.ShouldApplyOverrides(r.opts.ProjectDir) {
		r.logf("checking overrides for project: %s", r.opts.ProjectDir)
		if pattern, ok := cfg.ApplyOverrides(r.opts.ProjectDir); ok {
			r.logf("override %q matched", pattern)
		}
	}

	r.logf("loaded config with %d handlers", len(cfg.Handlers))
	return cfg, nil
}

// Process handles one invocation reading the event from in.
func (r *Runner) Process(ctx context.Context, in io.Reader) hook.Response {
	r.logf("boopifier starting")

	cfg, err := r.LoadConfig()
	if err != nil {
		r.logf("%s, continuing with a warning", clierrors.CategoryOf(err))
		return hook.ErrorResponse(err.Error())
	}

	line, err := readLine(in)
	if err != nil {
		r.logf("error reading stdin: %v", err)
		return hook.ErrorResponse(clierrors.StdinReadError(err).Error())
	}
	return r.ProcessLine(ctx, cfg, line)
}

// ProcessLine handles an already-read event line against cfg.
func (r *Runner) ProcessLine(ctx context.Context, cfg *config.Config, line string) hook.Response {
	line = strings.TrimSpace(line)
	if line == "" {
		r.logf("no input received")
		return hook.Response{}
	}
	r.logf("received event: %s", line)

	ev, err := event.Parse([]byte(line))
	if err != nil {
		r.logf("failed to parse event JSON: %v", err)
		return hook.ErrorResponse(clierrors.EventParseError(err).Error())
	}

	h, err := hook.FromEvent(ev)
	if err != nil {
		r.logf("unknown hook type: %v", err)
		return hook.ErrorResponse(clierrors.UnknownHook(err).Error())
	}
	r.logf("hook type: %s", h.Type())

	outcomes := r.dispatcher.Dispatch(ctx, cfg.Handlers, ev)
	r.logSummary(outcomes)

	resp := h.Response(outcomes)
	r.logf("event processed, exiting")
	return resp
}

func (r *Runner) logSummary(outcomes []hook.Outcome) {
	s := hook.Summarize(outcomes)
	if s.Failed == 0 {
		r.logf("event processed successfully (%d handlers)", s.Succeeded+s.Interactive)
		return
	}

	r.logf("event processed: %d succeeded, %d failed", s.Succeeded+s.Interactive, s.Failed)
	for _, o := range outcomes {
		if o.Kind == hook.OutcomeError {
			r.logf("handler error: %s", o.Message)
		}
	}
}

// readLine reads up to and including the first newline. Claude Code sends
// exactly one JSON line per invocation.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
