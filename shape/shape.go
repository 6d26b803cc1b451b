// Package shape declares the input contract of a chart capability and
// turns it into a validator and a JSON schema.
package shape

import "strings"

// Kind is the semantic type of a value in a shape.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindObject
	KindArray
	KindUnion
	KindLiteral
	// KindOpaque marks values that cannot cross a serialization boundary
	// (callbacks). They are accepted and dropped.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindLiteral:
		return "literal"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Type is an immutable type specification. Which of Fields, Elem,
// Variants and Value are set depends on Kind.
type Type struct {
	Kind     Kind
	Fields   []Field
	Elem     *Type
	Variants []*Type
	Value    string
}

// Field is one named member of an object type.
type Field struct {
	Name     string
	Type     *Type
	Required bool
	Default  any
	Doc      string
}

func Str() *Type  { return &Type{Kind: KindString} }
func Num() *Type  { return &Type{Kind: KindNumber} }
func Bool() *Type { return &Type{Kind: KindBoolean} }

// Func declares a callback-typed value.
func Func() *Type { return &Type{Kind: KindOpaque} }

func ArrayOf(elem *Type) *Type { return &Type{Kind: KindArray, Elem: elem} }

func Object(fields ...Field) *Type { return &Type{Kind: KindObject, Fields: fields} }

// OneOf accepts the first variant the value satisfies.
func OneOf(variants ...*Type) *Type { return &Type{Kind: KindUnion, Variants: variants} }

func Const(v string) *Type { return &Type{Kind: KindLiteral, Value: v} }

// Req declares a required field.
func Req(name string, t *Type, doc string) Field {
	return Field{Name: name, Type: t, Required: true, Doc: doc}
}

// Opt declares an optional field.
func Opt(name string, t *Type, doc string) Field {
	return Field{Name: name, Type: t, Doc: doc}
}

// WithDefault returns a copy of f that is filled with v when omitted.
// A field with a default is never reported as missing.
func (f Field) WithDefault(v any) Field {
	f.Default = v
	return f
}

// Field looks up a field of an object type by name.
func (t *Type) Field(name string) (Field, bool) {
	if t == nil || t.Kind != KindObject {
		return Field{}, false
	}
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// String renders the expected kind the way violations report it,
// e.g. "array<number>" or "string | array<string>".
func (t *Type) String() string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind {
	case KindArray:
		return "array<" + t.Elem.String() + ">"
	case KindUnion:
		parts := make([]string, len(t.Variants))
		for i, v := range t.Variants {
			parts[i] = v.String()
		}
		return strings.Join(parts, " | ")
	case KindLiteral:
		return `"` + t.Value + `"`
	default:
		return t.Kind.String()
	}
}
