package shape

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Violation is one way in which an input fails its shape.
type Violation struct {
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Received string `json:"received"`
}

func (v Violation) String() string {
	if v.Received == "missing" {
		return fmt.Sprintf("%s: required %s is missing", v.Path, v.Expected)
	}
	return fmt.Sprintf("%s: expected %s, received %s", v.Path, v.Expected, v.Received)
}

// ValidationError carries every violation found in one input.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	if len(msgs) == 1 {
		return "invalid input: " + msgs[0]
	}
	return fmt.Sprintf("invalid input (%d violations): %s", len(msgs), strings.Join(msgs, "; "))
}

// Paths returns the path of every violation, in the order found.
func (e *ValidationError) Paths() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Path
	}
	return out
}

const rootPath = "(root)"

// Validate checks raw against t and returns the normalized value:
// defaults filled in, unknown object keys and opaque fields dropped,
// numbers converted to float64. Validating a normalized value returns an
// equal value.
func Validate(t *Type, raw any) (any, error) {
	var c checker
	out := c.check(t, raw, "")
	if len(c.violations) > 0 {
		return nil, &ValidationError{Violations: c.violations}
	}
	return out, nil
}

type checker struct {
	violations []Violation
}

func (c *checker) fail(path string, t *Type, received string) {
	if path == "" {
		path = rootPath
	}
	c.violations = append(c.violations, Violation{Path: path, Expected: t.String(), Received: received})
}

func (c *checker) check(t *Type, raw any, path string) any {
	switch t.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			c.fail(path, t, kindOf(raw))
			return nil
		}
		return s

	case KindNumber:
		f, ok := toFloat(raw)
		if !ok {
			c.fail(path, t, kindOf(raw))
			return nil
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			c.fail(path, t, "non-finite number")
			return nil
		}
		return f

	case KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			c.fail(path, t, kindOf(raw))
			return nil
		}
		return b

	case KindLiteral:
		s, ok := raw.(string)
		if !ok {
			c.fail(path, t, kindOf(raw))
			return nil
		}
		if s != t.Value {
			c.fail(path, t, strconv.Quote(s))
			return nil
		}
		return s

	case KindObject:
		m, ok := raw.(map[string]any)
		if !ok {
			c.fail(path, t, kindOf(raw))
			return nil
		}
		out := make(map[string]any, len(t.Fields))
		for _, f := range t.Fields {
			fpath := joinField(path, f.Name)
			val, present := m[f.Name]
			if !present || val == nil {
				switch {
				case f.Default != nil:
					out[f.Name] = cloneValue(f.Default)
				case f.Required:
					c.violations = append(c.violations, Violation{Path: fpath, Expected: f.Type.String(), Received: "missing"})
				}
				continue
			}
			if f.Type.Kind == KindOpaque {
				continue
			}
			out[f.Name] = c.check(f.Type, val, fpath)
		}
		return out

	case KindArray:
		items, ok := asSlice(raw)
		if !ok {
			c.fail(path, t, kindOf(raw))
			return nil
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = c.check(t.Elem, item, fmt.Sprintf("%s[%d]", path, i))
		}
		return out

	case KindUnion:
		for _, variant := range t.Variants {
			var sub checker
			out := sub.check(variant, raw, path)
			if len(sub.violations) == 0 {
				return out
			}
		}
		c.fail(path, t, kindOf(raw))
		return nil

	case KindOpaque:
		return nil
	}

	c.fail(path, t, kindOf(raw))
	return nil
}

func joinField(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		// Out of range parses to ±Inf, which callers report as non-finite.
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func kindOf(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	if _, ok := asSlice(v); ok {
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
