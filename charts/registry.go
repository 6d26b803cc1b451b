package charts

import (
	"errors"
	"fmt"
	"iter"

	"github.com/mikills/tinkerings/chart-mcp/shape"
)

// ErrUnknownCapability matches any *UnknownCapabilityError.
var ErrUnknownCapability = errors.New("unknown chart capability")

// UnknownCapabilityError is returned by Get for names never registered.
type UnknownCapabilityError struct {
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown chart capability %q", e.Name)
}

func (e *UnknownCapabilityError) Is(target error) bool { return target == ErrUnknownCapability }

// DuplicateCapabilityError is returned by Register when the name is taken.
type DuplicateCapabilityError struct {
	Name string
}

func (e *DuplicateCapabilityError) Error() string {
	return fmt.Sprintf("chart capability %q already registered", e.Name)
}

// Registry maps capability names to descriptors. It is filled once at
// startup and only read afterwards, so lookups need no locking.
type Registry struct {
	byName map[string]*Descriptor
	order  []*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register appends d. The name must be new and the shape must carry the
// "type" discriminant for that name.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.Name == "" {
		return errors.New("descriptor must have a name")
	}
	if _, exists := r.byName[d.Name]; exists {
		return &DuplicateCapabilityError{Name: d.Name}
	}
	f, ok := d.Shape.Field("type")
	if !ok || f.Type.Kind != shape.KindLiteral || f.Type.Value != d.Name || f.Default != d.Name {
		return fmt.Errorf("descriptor %q: shape must declare a \"type\" discriminant defaulting to %q", d.Name, d.Name)
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d)
	return nil
}

// MustRegister is Register for init-time descriptor sets; a failure is a
// programming error.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, &UnknownCapabilityError{Name: name}
	}
	return d, nil
}

// All yields descriptors in registration order. The sequence can be
// ranged over any number of times.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.order {
			if !yield(d) {
				return
			}
		}
	}
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, d := range r.order {
		names[i] = d.Name
	}
	return names
}

func (r *Registry) Len() int { return len(r.order) }
