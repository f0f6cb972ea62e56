// Package gate reports whether the room lights are on, so the clock can go
// dark with them. Every failure counts as "on".
package gate

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/garrettladley/wordclock/internal/xhttp"
	"github.com/garrettladley/wordclock/internal/xslog"
)

// Querier asks a light-state provider whether any light in the watched group
// is on.
type Querier interface {
	AnyLightOn(ctx context.Context) (bool, error)
}

type Provider string

const (
	ProviderHue           Provider = "hue"
	ProviderHomeAssistant Provider = "homeassistant"
	ProviderRedis         Provider = "redis"
)

// Capability is what the gate can currently tell about the lights.
type Capability uint8

const (
	// Disabled gates are not configured and always open.
	Disabled Capability = iota
	// Unreachable gates are configured but their last query failed.
	Unreachable
	// Healthy gates answered their last query.
	Healthy
)

func (c Capability) String() string {
	switch c {
	case Disabled:
		return "disabled"
	case Unreachable:
		return "unreachable"
	case Healthy:
		return "healthy"
	default:
		return "unknown"
	}
}

type Config struct {
	Provider Provider      `env:"PROVIDER"`
	URL      string        `env:"URL"`
	Token    string        `env:"TOKEN"`
	Group    string        `env:"GROUP"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"2s"`
}

const defaultTimeout = 2 * time.Second

type Gate struct {
	querier Querier
	closer  io.Closer
	timeout time.Duration
	logger  *slog.Logger

	mu         sync.Mutex
	capability Capability
}

type gateConfig struct {
	logger     *slog.Logger
	httpClient *http.Client
}

type Option func(*gateConfig)

// WithLogger pins the gate's logger. Without it, queries log through the
// logger carried by their context.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *gateConfig) { cfg.logger = logger }
}

// WithHTTPClient replaces the client used by the HTTP providers.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *gateConfig) { cfg.httpClient = c }
}

// New builds the gate described by cfg. A missing or invalid configuration
// yields a Disabled gate rather than an error.
func New(cfg Config, opts ...Option) *Gate {
	gc := &gateConfig{}
	for _, opt := range opts {
		opt(gc)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if gc.httpClient == nil {
		gc.httpClient = xhttp.NewHTTPClient(xhttp.WithTimeout(timeout))
	}

	if cfg.Provider == "" {
		return newGate(nil, nil, timeout, gc.logger)
	}

	q, closer, err := build(cfg, gc.httpClient)
	if err != nil {
		cmp.Or(gc.logger, slog.Default()).Warn("light gate disabled",
			xslog.Provider(string(cfg.Provider)),
			xslog.Error(err))
		return newGate(nil, nil, timeout, gc.logger)
	}
	return newGate(q, closer, timeout, gc.logger)
}

func build(cfg Config, c *http.Client) (Querier, io.Closer, error) {
	switch cfg.Provider {
	case ProviderHue:
		if err := requireHTTP(cfg); err != nil {
			return nil, nil, err
		}
		return NewHue(cfg.URL, cfg.Token, cfg.Group, c), nil, nil
	case ProviderHomeAssistant:
		if err := requireHTTP(cfg); err != nil {
			return nil, nil, err
		}
		return NewHomeAssistant(cfg.URL, cfg.Token, cfg.Group, c), nil, nil
	case ProviderRedis:
		if cfg.Group == "" {
			return nil, nil, fmt.Errorf("gate: redis provider needs a key in GATE_GROUP")
		}
		r, err := NewRedis(cfg.URL, cfg.Group)
		if err != nil {
			return nil, nil, err
		}
		return r, r, nil
	default:
		return nil, nil, fmt.Errorf("gate: unknown provider %q (valid: hue, homeassistant, redis)", cfg.Provider)
	}
}

func requireHTTP(cfg Config) error {
	if cfg.Token == "" || cfg.Group == "" {
		return fmt.Errorf("gate: %s provider needs GATE_TOKEN and GATE_GROUP", cfg.Provider)
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("gate: invalid url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("gate: url %q must be absolute http(s)", cfg.URL)
	}
	return nil
}

func newGate(q Querier, closer io.Closer, timeout time.Duration, logger *slog.Logger) *Gate {
	g := &Gate{
		querier: q,
		closer:  closer,
		timeout: timeout,
		logger:  logger,
	}
	if q != nil {
		g.capability = Healthy
	}
	return g
}

// Open reports whether the display should show the time. It returns true
// when the gate is disabled or the provider cannot be reached.
func (g *Gate) Open(ctx context.Context) bool {
	if g.querier == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	on, err := g.querier.AnyLightOn(ctx)
	if err != nil {
		g.setCapability(Unreachable)
		attrs := []any{xslog.Error(err)}
		var netErr *NetworkError
		if errors.As(err, &netErr) && netErr.Status != 0 {
			attrs = append(attrs, xslog.HTTPStatus(netErr.Status))
		}
		g.log(ctx).WarnContext(ctx, "light gate query failed, staying on", attrs...)
		return true
	}
	g.setCapability(Healthy)
	return on
}

func (g *Gate) log(ctx context.Context) *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return xslog.FromContext(ctx)
}

func (g *Gate) Capability() Capability {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.capability
}

func (g *Gate) setCapability(c Capability) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.capability = c
}

func (g *Gate) Close() error {
	if g.closer == nil {
		return nil
	}
	return g.closer.Close()
}
