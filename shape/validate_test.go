package shape

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointShape = Object(
	Req("x", Num(), "x coordinate"),
	Req("y", Num(), "y coordinate"),
)

var testShape = Object(
	Opt("type", Const("scatter"), "chart type").WithDefault("scatter"),
	Req("data", Object(
		Req("datasets", ArrayOf(Object(
			Req("label", Str(), "dataset label"),
			Req("data", ArrayOf(pointShape), "points"),
			Opt("color", OneOf(Str(), ArrayOf(Str())), "colour or colours"),
			Opt("showLine", Bool(), "connect points"),
			Opt("formatter", Func(), "label callback"),
		)), "datasets"),
	), "chart data"),
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestValidate_Valid(t *testing.T) {
	raw := decode(t, `{
		"data": {
			"datasets": [
				{"label": "A", "data": [{"x": 1, "y": 2}, {"x": -3.5, "y": 0}], "color": ["red", "blue"], "showLine": true}
			]
		}
	}`)

	out, err := Validate(testShape, raw)
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, "scatter", m["type"], "discriminant should be defaulted")

	ds := m["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)
	assert.Equal(t, "A", ds["label"])
	assert.Equal(t, []any{"red", "blue"}, ds["color"])
	assert.Equal(t, true, ds["showLine"])
	points := ds["data"].([]any)
	assert.Equal(t, map[string]any{"x": 1.0, "y": 2.0}, points[0])
	assert.Equal(t, map[string]any{"x": -3.5, "y": 0.0}, points[1])
}

func TestValidate_Idempotent(t *testing.T) {
	raw := decode(t, `{"data": {"datasets": [{"label": "A", "data": [{"x": 1, "y": 2}], "color": "red"}]}}`)

	first, err := Validate(testShape, raw)
	require.NoError(t, err)
	second, err := Validate(testShape, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPaths []string
	}{
		{
			name:      "missing required field",
			input:     `{"data": {"datasets": [{"data": []}]}}`,
			wantPaths: []string{"data.datasets[0].label"},
		},
		{
			name:      "missing top level object",
			input:     `{}`,
			wantPaths: []string{"data"},
		},
		{
			name:      "wrong primitive",
			input:     `{"data": {"datasets": [{"label": 7, "data": []}]}}`,
			wantPaths: []string{"data.datasets[0].label"},
		},
		{
			name:      "array element failing its shape",
			input:     `{"data": {"datasets": [{"label": "A", "data": [{"x": 1, "y": 2}, {"x": "1", "y": 2}]}]}}`,
			wantPaths: []string{"data.datasets[0].data[1].x"},
		},
		{
			name:      "no string to number coercion",
			input:     `{"data": {"datasets": [{"label": "A", "data": [{"x": "12", "y": "3"}]}]}}`,
			wantPaths: []string{"data.datasets[0].data[0].x", "data.datasets[0].data[0].y"},
		},
		{
			name:      "union with no matching variant",
			input:     `{"data": {"datasets": [{"label": "A", "data": [], "color": 4}]}}`,
			wantPaths: []string{"data.datasets[0].color"},
		},
		{
			name:      "wrong discriminant",
			input:     `{"type": "bar", "data": {"datasets": []}}`,
			wantPaths: []string{"type"},
		},
		{
			name:      "every violation is reported",
			input:     `{"data": {"datasets": [{"label": 1, "data": "nope"}, {"data": [{"y": true}]}]}}`,
			wantPaths: []string{"data.datasets[0].label", "data.datasets[0].data", "data.datasets[1].label", "data.datasets[1].data[0].x", "data.datasets[1].data[0].y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(testShape, decode(t, tt.input))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantPaths, verr.Paths())
		})
	}
}

func TestValidate_ViolationDetail(t *testing.T) {
	_, err := Validate(testShape, decode(t, `{"data": {"datasets": [{"label": "A", "data": [{"x": 1, "y": "2"}], "color": 4}]}}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 2)
	assert.Equal(t, Violation{Path: "data.datasets[0].data[0].y", Expected: "number", Received: "string"}, verr.Violations[0])
	assert.Equal(t, Violation{Path: "data.datasets[0].color", Expected: "string | array<string>", Received: "number"}, verr.Violations[1])
	assert.Contains(t, err.Error(), "2 violations")
	assert.Contains(t, err.Error(), "data.datasets[0].data[0].y: expected number, received string")
}

func TestValidate_RootMustBeObject(t *testing.T) {
	_, err := Validate(testShape, []any{1, 2})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []Violation{{Path: "(root)", Expected: "object", Received: "array"}}, verr.Violations)
}

func TestValidate_NumbersMustBeFinite(t *testing.T) {
	nums := Object(Req("data", ArrayOf(Num()), "values"))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Validate(nums, map[string]any{"data": []any{1.0, v}})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "data[1]", verr.Violations[0].Path)
		assert.Equal(t, "non-finite number", verr.Violations[0].Received)
	}
}

func TestValidate_OutOfRangeJSONNumber(t *testing.T) {
	nums := Object(Req("data", ArrayOf(Num()), "values"))

	for _, n := range []json.Number{"1e400", "-1e400"} {
		_, err := Validate(nums, map[string]any{"data": []any{n}})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []Violation{{Path: "data[0]", Expected: "number", Received: "non-finite number"}}, verr.Violations)
	}

	_, err := Validate(nums, map[string]any{"data": []any{json.Number("abc")}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "json.Number", verr.Violations[0].Received)
}

func TestValidate_NumericGoTypes(t *testing.T) {
	nums := Object(Req("data", ArrayOf(Num()), "values"))

	out, err := Validate(nums, map[string]any{
		"data": []any{1, int64(2), float32(3.5), uint8(4), json.Number("5.25")},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.5, 4.0, 5.25}, out.(map[string]any)["data"])

	// typed slices are accepted as arrays
	out, err = Validate(nums, map[string]any{"data": []float64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0}, out.(map[string]any)["data"])
}

func TestValidate_StripsUnknownAndOpaque(t *testing.T) {
	raw := decode(t, `{
		"title": "ignored",
		"data": {"extra": 1, "datasets": [{"label": "A", "data": [], "formatter": "function(v){return v}"}]}
	}`)

	out, err := Validate(testShape, raw)
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.NotContains(t, m, "title")
	data := m["data"].(map[string]any)
	assert.NotContains(t, data, "extra")
	assert.NotContains(t, data["datasets"].([]any)[0], "formatter")
}

func TestValidate_NullCountsAsOmitted(t *testing.T) {
	out, err := Validate(testShape, decode(t, `{"type": null, "data": {"datasets": [{"label": "A", "data": [], "color": null}]}}`))
	require.NoError(t, err)

	m := out.(map[string]any)
	assert.Equal(t, "scatter", m["type"])
	assert.NotContains(t, m["data"].(map[string]any)["datasets"].([]any)[0], "color")
}

func TestValidate_DefaultsAreCopied(t *testing.T) {
	s := Object(Opt("tags", ArrayOf(Str()), "tags").WithDefault([]any{"a"}))

	first, err := Validate(s, map[string]any{})
	require.NoError(t, err)
	first.(map[string]any)["tags"].([]any)[0] = "mutated"

	second, err := Validate(s, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, second.(map[string]any)["tags"])
}

func TestConstructorKinds(t *testing.T) {
	assert.Equal(t, KindObject, Object().Kind)
	assert.Equal(t, KindArray, ArrayOf(Num()).Kind)
	assert.Equal(t, KindLiteral, Const("bar").Kind)
	assert.Equal(t, KindOpaque, Func().Kind)
	assert.Equal(t, "object", KindObject.String())
}
