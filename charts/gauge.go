package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var gaugeOptions = shape.Object(
	shape.Opt("valueLabel", shape.Object(
		shape.Opt("fontSize", shape.Num(), "Font size of the value label"),
		shape.Opt("backgroundColor", shape.Str(), "Background color of the value label"),
		shape.Opt("color", shape.Str(), "Text color of the value label"),
		// callbacks cannot be sent to the renderer; accepted and dropped
		shape.Opt("formatter", shape.Func(), "Value formatter callback (not supported, ignored)"),
		shape.Opt("bottomMarginPercentage", shape.Num(), "Bottom margin as a percentage of the chart height"),
	), "Value label options"),
)

var Gauge = newDescriptor("gauge",
	`Generates a gauge chart with the provided value and thresholds.
The needle points at value; data holds the upper bound of each colored section.`,
	`{
  "type": "gauge",
  "data": {
    "datasets": [
      {
        "value": 50,
        "data": [20, 40, 60],
        "backgroundColor": ["green", "orange", "red"],
        "borderWidth": 2
      }
    ]
  },
  "options": {
    "valueLabel": {
      "fontSize": 22,
      "backgroundColor": "transparent",
      "color": "#000",
      "bottomMarginPercentage": 10
    }
  }
}`,
	chartData(shape.Object(
		shape.Req("value", shape.Num(), "Current value of the gauge"),
		numbers("Threshold values for different sections"),
		shape.Req("backgroundColor", shape.ArrayOf(shape.Str()), "Background colors for each section"),
		width("borderWidth", "Width of the gauge border"),
		datasetLabel(false),
	)),
	shape.Opt("options", gaugeOptions, "Chart options"),
)
