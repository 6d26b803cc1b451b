// Package charts declares every chart capability the server exposes and the
// registry that holds them.
package charts

import (
	"encoding/json"
	"fmt"

	"github.com/mikills/tinkerings/chart-mcp/shape"
)

// Descriptor is the static declaration of one chart capability.
type Descriptor struct {
	Name        string
	Description string
	// Example is a literal JSON payload that satisfies Shape.
	Example string
	Shape   *shape.Type
}

// newDescriptor builds a descriptor whose shape starts with the "type"
// discriminant, fixed to and defaulting to name.
func newDescriptor(name, summary, example string, fields ...shape.Field) *Descriptor {
	discriminant := shape.Opt("type", shape.Const(name), fmt.Sprintf("Chart type, always %q", name)).WithDefault(name)
	return &Descriptor{
		Name:        name,
		Description: summary + "\nexample input:\n```json\n" + example + "\n```",
		Example:     example,
		Shape:       shape.Object(append([]shape.Field{discriminant}, fields...)...),
	}
}

// Validate checks raw against the descriptor's shape and returns the
// normalized payload.
func (d *Descriptor) Validate(raw any) (map[string]any, error) {
	out, err := shape.Validate(d.Shape, raw)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// InputSchema returns the exported JSON schema of the descriptor.
func (d *Descriptor) InputSchema() (json.RawMessage, error) {
	b, err := json.Marshal(shape.Export(d.Shape))
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", d.Name, err)
	}
	return b, nil
}

// Default returns a registry holding every chart kind. Registration order
// is alphabetical and is the order tools are advertised in.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(Bar)
	r.MustRegister(Bubble)
	r.MustRegister(Doughnut)
	r.MustRegister(Gauge)
	r.MustRegister(Line)
	r.MustRegister(Pie)
	r.MustRegister(PolarArea)
	r.MustRegister(ProgressBar)
	r.MustRegister(Radar)
	r.MustRegister(RadialGauge)
	r.MustRegister(Sankey)
	r.MustRegister(Scatter)
	r.MustRegister(Sparkline)
	r.MustRegister(Violin)
	return r
}
