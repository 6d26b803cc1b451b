package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var scatterPoint = shape.Object(
	shape.Req("x", shape.Num(), "X coordinate"),
	shape.Req("y", shape.Num(), "Y coordinate"),
)

var Scatter = newDescriptor("scatter",
	`Generates a scatter chart with the provided data points.
Scatter charts plot {x, y} pairs; use them to show correlation between two
numeric variables.`,
	`{
  "type": "scatter",
  "data": {
    "datasets": [
      {
        "label": "Data 1",
        "data": [
          {"x": 2, "y": 4},
          {"x": 3, "y": 3},
          {"x": -10, "y": 0},
          {"x": 0, "y": 10},
          {"x": 10, "y": 5}
        ]
      }
    ]
  }
}`,
	chartData(shape.Object(
		datasetLabel(true),
		shape.Req("data", shape.ArrayOf(scatterPoint), "Array of {x, y} coordinate points"),
		color("backgroundColor", "Background color of the points"),
		color("borderColor", "Border color of the points"),
		width("borderWidth", "Width of the point borders"),
		width("pointRadius", "Radius of the data points"),
		color("pointBackgroundColor", "Background color of the data points"),
		color("pointBorderColor", "Border color of the data points"),
		shape.Opt("showLine", shape.Bool(), "Whether to show lines connecting the points"),
	)),
)
