// Package logger configures log/slog for the tuple tools and hands out
// loggers annotated with the calling subsystem.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/amp-labs/amp-tuple/envutil"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"go.uber.org/atomic"
)

// Default subsystem name, set by ConfigureLogging.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions,
// which modifies global state (slog.SetDefault).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Unexported context key type to avoid collisions with other packages.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	// Color enables ANSI colors for text output. It's ignored unless Output
	// is a terminal.
	Color    bool
	MinLevel slog.Level
	Output   io.Writer
}

// NewHandler builds the slog.Handler described by opts without installing it.
func NewHandler(opts Options) slog.Handler {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	if opts.JSON {
		return slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	return tint.NewHandler(opts.Output, &tint.Options{
		Level:      opts.MinLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !opts.Color || !isTerminal(opts.Output),
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// ConfigureLoggingWithOptions configures logging for the application and
// returns the default logger. It is safe to call concurrently, but it
// modifies global state.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	logger := slog.New(NewHandler(opts))

	slog.SetDefault(logger)
	subsystem.Store(opts.Subsystem)

	return logger
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithLevel overrides the minimum level read from the environment.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithOutput overrides the destination read from the environment.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLogging configures logging from the environment:
// LOG_JSON (default false), LOG_LEVEL (default info), LOG_COLOR
// (default true) and LOG_OUTPUT (stdout or stderr, default stderr).
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	output := envutil.Map(envutil.String(ctx, "LOG_OUTPUT"), func(outName string) (*os.File, error) {
		switch outName {
		case "stdout":
			return os.Stdout, nil
		case "stderr":
			return os.Stderr, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
		}
	}).WithDefault(os.Stderr).ValueOrFatal()

	options := Options{
		Subsystem: app,
		JSON:      envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).ValueOrFatal(),
		Color:     envutil.Bool(ctx, "LOG_COLOR", envutil.Default(true)).ValueOrFatal(),
		MinLevel:  envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal(),
		Output:    output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithSubsystem overrides the subsystem attached to loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem from the context, falling back to the
// one set by ConfigureLogging.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx != nil {
		if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
			return val
		}
	}

	return subsystem.Load()
}

// WithMuted adds a muted flag to the context. Loggers obtained from a muted
// context discard everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithLogger stores a logger in the context; Get prefers it over the default.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), logger)
}

var nullLogger = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

// Get returns a logger for the (optional) context, carrying the subsystem.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	base := slog.Default()

	if realCtx != nil {
		if stored, ok := realCtx.Value(contextKey("logger")).(*slog.Logger); ok && stored != nil {
			base = stored
		}
	}

	if sub := GetSubsystem(realCtx); sub != "" {
		return base.With("subsystem", sub)
	}

	return base
}

// getRealContext extracts the first non-nil context from a variadic list.
func getRealContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return nil
}
