package emitter

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/emitter/core/config"
	"github.com/dmitrymomot/emitter/core/logger"
)

const (
	// DefaultSeparator joins scope segments and event names.
	DefaultSeparator = ":"

	// DefaultNewListenerEvent is emitted after every registration.
	DefaultNewListenerEvent = "newListener"
)

// Config holds the dispatcher settings that can come from the environment.
type Config struct {
	Separator          string `env:"EMITTER_SEPARATOR" envDefault:":"`
	NewListenerEvent   string `env:"EMITTER_NEW_LISTENER_EVENT" envDefault:"newListener"`
	DisableNewListener bool   `env:"EMITTER_DISABLE_NEW_LISTENER" envDefault:"false"`
}

// DefaultConfig returns the configuration New uses.
func DefaultConfig() Config {
	return Config{
		Separator:        DefaultSeparator,
		NewListenerEvent: DefaultNewListenerEvent,
	}
}

// PanicHandler is told about every panic recovered from a listener.
type PanicHandler func(err *PanicError)

// Option configures a Dispatcher during creation.
type Option func(*Dispatcher)

// NewFromConfig creates a dispatcher from cfg; opts override cfg.
func NewFromConfig(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		id:               newID(),
		events:           make(map[string][]Listener),
		separator:        cfg.Separator,
		newListenerEvent: cfg.NewListenerEvent,
		logger:           slog.Default(),
	}
	if d.separator == "" {
		d.separator = DefaultSeparator
	}
	if cfg.DisableNewListener {
		d.newListenerEvent = ""
	}

	for _, opt := range opts {
		opt(d)
	}

	d.logger = d.logger.With(
		logger.Component("emitter"),
		logger.ID("dispatcher_id", d.id),
	)
	return d
}

// NewFromEnv loads Config from the environment (and a .env file, if present)
// and creates a dispatcher from it.
func NewFromEnv(opts ...Option) (*Dispatcher, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("emitter: load config: %w", err)
	}
	return NewFromConfig(cfg, opts...), nil
}

// WithLogger sets the logger for dispatcher diagnostics.
// If not set, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSeparator sets the string used to join scope segments.
func WithSeparator(sep string) Option {
	return func(d *Dispatcher) {
		if sep != "" {
			d.separator = sep
		}
	}
}

// WithNewListenerEvent renames the registration notification event.
// An empty name disables it.
func WithNewListenerEvent(name string) Option {
	return func(d *Dispatcher) {
		d.newListenerEvent = name
	}
}

// WithoutNewListenerEvent disables the registration notification event.
func WithoutNewListenerEvent() Option {
	return WithNewListenerEvent("")
}

// WithPanicHandler sets a callback for panics recovered from listeners.
func WithPanicHandler(h PanicHandler) Option {
	return func(d *Dispatcher) {
		d.panicHandler = h
	}
}
