package modelcheck

import (
	"context"
	"log/slog"

	"github.com/reoring/modelcheck/internal/engine"
)

// DefaultMaxDepth is the path length beyond which validation stops
// descending and reports CodeMaxDepth.
const DefaultMaxDepth = engine.DefaultMaxDepth

// Options bundles construction-time defaults and call-time overrides.
type Options struct {
	DefaultModel     string // Schema used when Validate is called without a name.
	RegexAsString    bool   // Render sanitized patterns as "/source/flags".
	HideConfidential bool   // Replace confidential strings with Redacted.
	// MaxDepth limits how deep validation descends. 0 selects
	// DefaultMaxDepth; negative disables the limit.
	MaxDepth int
	Logger   *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithDefaultModel sets the schema used when Validate receives no name.
func WithDefaultModel(name string) Option { return func(o *Options) { o.DefaultModel = name } }

// WithRegexAsString renders sanitized regex values as text.
func WithRegexAsString(enabled bool) Option { return func(o *Options) { o.RegexAsString = enabled } }

// WithHideConfidential redacts strings whose schema is marked confidential.
func WithHideConfidential(enabled bool) Option {
	return func(o *Options) { o.HideConfidential = enabled }
}

// WithMaxDepth bounds the validation depth.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithLogger sets the logger used for debug output. nil restores the
// discarding logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithOptions replaces every setting at once.
func WithOptions(opts Options) Option { return func(o *Options) { *o = opts } }

func (o Options) apply(opts []Option) Options {
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discard
	}
	return o.Logger
}

func (o Options) engine() engine.Options {
	return engine.Options{
		RegexAsString:    o.RegexAsString,
		HideConfidential: o.HideConfidential,
		MaxDepth:         o.MaxDepth,
	}
}

var discard = slog.New(discardHandler{})

// discardHandler mirrors slog.DiscardHandler (Go 1.24+) for older toolchains.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
