package notify

import (
	"io"
	"math/rand/v2"
	"net/http"
	"sort"
	"sync"

	"github.com/boopifier/boopifier/internal/build"
	"github.com/boopifier/boopifier/internal/debuglog"
)

// Registry maps handler type names to backends. It is safe for concurrent
// lookups once built.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

type options struct {
	debug      bool
	logger     *debuglog.Logger
	sender     Sender
	httpClient *http.Client
	userAgent  string
	rng        *rand.Rand
	mailSend   mailSendFunc
}

// Option customizes NewRegistry.
type Option func(*options)

// WithDebug forwards player and tool diagnostics to the debug logger. They
// are discarded otherwise.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithLogger sets the debug logger handlers write to.
func WithLogger(l *debuglog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSender replaces the platform notification sender.
func WithSender(s Sender) Option {
	return func(o *options) { o.sender = s }
}

// WithHTTPClient replaces the webhook HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithUserAgent overrides the webhook User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithRand sets the random source used to pick sound files.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

func withMailSend(fn mailSendFunc) Option {
	return func(o *options) { o.mailSend = fn }
}

// NewRegistry creates a Registry holding every built-in backend.
func NewRegistry(opts ...Option) *Registry {
	o := options{userAgent: build.UserAgent()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.sender == nil {
		var stderr io.Writer = io.Discard
		if o.debug && o.logger.Enabled() {
			stderr = o.logger
		}
		o.sender = NewSender(stderr)
	}

	r := &Registry{handlers: make(map[string]Handler)}
	r.Register(NewDesktopHandler(o.sender))
	r.Register(NewSoundHandler(o.sender, o.rng, o.logger))
	r.Register(NewSignalHandler())
	r.Register(newWebhookHandler(o.httpClient, o.userAgent))
	r.Register(newEmailHandler(o.mailSend))
	r.Register(NewDecisionHandler())
	return r
}

// Register adds h, replacing any handler with the same type.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Type()] = h
}

// Lookup returns the handler for handlerType.
func (r *Registry) Lookup(handlerType string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[handlerType]
	return h, ok
}

// Types lists the registered handler types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
