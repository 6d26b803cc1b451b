package shape

import "github.com/invopop/jsonschema"

// Export converts t into a JSON schema document suitable for advertising
// the contract to a caller before any call is made. It has no side effects
// and returns a fresh document on every call; properties keep declaration
// order so two exports of the same shape marshal identically.
//
// Opaque fields are left out: a callback has no JSON representation.
func Export(t *Type) *jsonschema.Schema {
	return export(t)
}

func export(t *Type) *jsonschema.Schema {
	switch t.Kind {
	case KindString:
		return &jsonschema.Schema{Type: "string"}
	case KindNumber:
		return &jsonschema.Schema{Type: "number"}
	case KindBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case KindLiteral:
		return &jsonschema.Schema{Type: "string", Const: t.Value}
	case KindArray:
		return &jsonschema.Schema{Type: "array", Items: export(t.Elem)}
	case KindUnion:
		s := &jsonschema.Schema{}
		for _, v := range t.Variants {
			s.AnyOf = append(s.AnyOf, export(v))
		}
		return s
	case KindObject:
		s := &jsonschema.Schema{Type: "object", Properties: jsonschema.NewProperties()}
		for _, f := range t.Fields {
			if f.Type.Kind == KindOpaque {
				continue
			}
			prop := export(f.Type)
			prop.Description = f.Doc
			if f.Default != nil {
				prop.Default = cloneValue(f.Default)
			}
			s.Properties.Set(f.Name, prop)
			if f.Required && f.Default == nil {
				s.Required = append(s.Required, f.Name)
			}
		}
		return s
	}
	return &jsonschema.Schema{}
}
