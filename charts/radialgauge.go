package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var RadialGauge = newDescriptor("radialGauge",
	`Generates a radial gauge chart with the provided value.
data holds a single value drawn as an arc.`,
	`{
  "type": "radialGauge",
  "data": {
    "datasets": [
      {
        "data": [70],
        "backgroundColor": "green"
      }
    ]
  }
}`,
	chartData(shape.Object(
		numbers("Single value array representing the gauge value"),
		color("backgroundColor", "Background color of the gauge"),
		color("borderColor", "Border color of the gauge"),
		width("borderWidth", "Width of the gauge border"),
		datasetLabel(false),
	)),
)
