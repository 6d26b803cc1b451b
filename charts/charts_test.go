package charts

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikills/tinkerings/chart-mcp/shape"
)

func decodeExample(t *testing.T, d *Descriptor) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(d.Example), &m), "example of %s is not JSON", d.Name)
	return m
}

func TestDescriptors_ExamplesValidate(t *testing.T) {
	for d := range Default().All() {
		t.Run(d.Name, func(t *testing.T) {
			out, err := d.Validate(decodeExample(t, d))
			require.NoError(t, err)
			assert.Equal(t, d.Name, out["type"])

			again, err := d.Validate(out)
			require.NoError(t, err)
			assert.Equal(t, out, again, "normalization must be idempotent")
		})
	}
}

func TestDescriptors_DiscriminantDefaulted(t *testing.T) {
	for d := range Default().All() {
		t.Run(d.Name, func(t *testing.T) {
			raw := decodeExample(t, d)
			delete(raw, "type")

			out, err := d.Validate(raw)
			require.NoError(t, err)
			assert.Equal(t, d.Name, out["type"])
		})
	}
}

func TestDescriptors_RejectForeignDiscriminant(t *testing.T) {
	raw := decodeExample(t, Bar)
	raw["type"] = "line"

	_, err := Bar.Validate(raw)
	var verr *shape.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"type"}, verr.Paths())
}

func TestDescriptors_MissingData(t *testing.T) {
	for d := range Default().All() {
		t.Run(d.Name, func(t *testing.T) {
			_, err := d.Validate(map[string]any{})
			var verr *shape.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{"data"}, verr.Paths())
		})
	}
}

func TestDescriptors_DescriptionCarriesExample(t *testing.T) {
	for d := range Default().All() {
		assert.Contains(t, d.Description, "```json\n"+d.Example+"\n```", d.Name)
	}
}

func TestDescriptors_SchemaAcceptsExample(t *testing.T) {
	for d := range Default().All() {
		t.Run(d.Name, func(t *testing.T) {
			raw, err := d.InputSchema()
			require.NoError(t, err)

			c := jsonschema.NewCompiler()
			require.NoError(t, c.AddResource(d.Name+".json", bytes.NewReader(raw)))
			sch, err := c.Compile(d.Name + ".json")
			require.NoError(t, err)

			assert.NoError(t, sch.Validate(decodeExample(t, d)))
			assert.Error(t, sch.Validate(map[string]any{"type": d.Name}), "data is required")
		})
	}
}

func TestDescriptors_SchemaIsStable(t *testing.T) {
	for d := range Default().All() {
		first, err := d.InputSchema()
		require.NoError(t, err)
		second, err := d.InputSchema()
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), d.Name)
	}
}

func TestBar_SpecExample(t *testing.T) {
	out, err := Bar.Validate(map[string]any{
		"data": map[string]any{
			"labels":   []any{"Jan", "Feb"},
			"datasets": []any{map[string]any{"label": "Dogs", "data": []any{1, 2}}},
		},
	})
	require.NoError(t, err)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"bar","data":{"labels":["Jan","Feb"],"datasets":[{"label":"Dogs","data":[1,2]}]}}`, string(b))
}

func TestViolin_LabelsAcceptStringsAndNumbers(t *testing.T) {
	raw := decodeExample(t, Violin)
	raw["data"].(map[string]any)["labels"] = []any{"2012", 2013.0}

	out, err := Violin.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, []any{"2012", 2013.0}, out["data"].(map[string]any)["labels"])

	raw["data"].(map[string]any)["labels"] = []any{true}
	_, err = Violin.Validate(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.labels[0]: expected string | number, received boolean")
}

func TestDoughnut_ColorUnion(t *testing.T) {
	for _, c := range []any{"red", []any{"red", "blue"}} {
		raw := decodeExample(t, Doughnut)
		raw["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)["backgroundColor"] = c

		out, err := Doughnut.Validate(raw)
		require.NoError(t, err)
		ds := out["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)
		assert.Equal(t, c, ds["backgroundColor"])
	}
}

func TestFormatterNeverForwarded(t *testing.T) {
	gauge := decodeExample(t, Gauge)
	gauge["options"].(map[string]any)["valueLabel"].(map[string]any)["formatter"] = "function (v) { return v + ' mph' }"

	out, err := Gauge.Validate(gauge)
	require.NoError(t, err)
	b, _ := json.Marshal(out)
	assert.False(t, strings.Contains(string(b), "formatter"))
	assert.Contains(t, string(b), `"bottomMarginPercentage":10`)

	schema, err := Gauge.InputSchema()
	require.NoError(t, err)
	assert.NotContains(t, string(schema), "formatter")
}
