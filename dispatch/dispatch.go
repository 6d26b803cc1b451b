// Package dispatch runs one chart request through lookup, validation and
// rendering, and folds the outcome into an Envelope.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mikills/tinkerings/chart-mcp/charts"
	"github.com/mikills/tinkerings/chart-mcp/shape"
)

const MIMETypePNG = "image/png"

// Renderer turns a JSON chart specification into image bytes.
type Renderer interface {
	Render(ctx context.Context, chart []byte) ([]byte, error)
}

type Dispatcher struct {
	registry *charts.Registry
	renderer Renderer
	logger   *slog.Logger
	metrics  *Metrics
}

type Option func(*Dispatcher)

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

func New(reg *charts.Registry, r Renderer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		renderer: r,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch never returns a nil Envelope and never retries. Lookup and
// validation failures are reported without contacting the backend.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) (env Envelope) {
	id := uuid.NewString()
	log := d.logger.With("dispatch_id", id, "capability", name)
	label := unknownCapabilityLabel

	defer func() {
		if p := recover(); p != nil {
			log.Error("dispatch panicked", "panic", p)
			d.metrics.observe(label, outcomeBackendError)
			env = &ErrorResult{
				Message: fmt.Sprintf("internal error generating %s chart", name),
				Err:     fmt.Errorf("panic: %v", p),
			}
		}
	}()

	desc, err := d.registry.Get(name)
	if err != nil {
		log.Warn("unknown capability")
		d.metrics.observe(label, outcomeUnknownCapability)
		return &ErrorResult{Message: err.Error(), Err: err}
	}
	label = desc.Name

	var input any = raw
	if raw == nil {
		input = map[string]any{}
	}
	payload, err := desc.Validate(input)
	if err != nil {
		var verr *shape.ValidationError
		if errors.As(err, &verr) {
			log.Info("invalid chart input", "violations", len(verr.Violations))
		}
		d.metrics.observe(label, outcomeInvalidInput)
		return &ErrorResult{Message: err.Error(), Err: err}
	}

	chart, err := json.Marshal(payload)
	if err != nil {
		berr := &BackendError{Capability: name, Err: err}
		d.metrics.observe(label, outcomeBackendError)
		return &ErrorResult{Message: berr.Error(), Err: berr}
	}

	start := time.Now()
	img, err := d.renderer.Render(ctx, chart)
	d.metrics.observeBackend(label, time.Since(start))
	if err != nil {
		berr := &BackendError{Capability: name, Err: err}
		log.Error("chart rendering failed", "error", err, "elapsed", time.Since(start))
		d.metrics.observe(label, outcomeBackendError)
		return &ErrorResult{Message: berr.Error(), Err: berr}
	}

	log.Info("chart rendered", "bytes", len(img), "elapsed", time.Since(start))
	d.metrics.observe(label, outcomeOK)
	return &ImageResult{Bytes: img, MIMEType: MIMETypePNG}
}
