package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var bubblePoint = shape.Object(
	shape.Req("x", shape.Num(), "X coordinate"),
	shape.Req("y", shape.Num(), "Y coordinate"),
	shape.Req("r", shape.Num(), "Radius of the bubble"),
)

var Bubble = newDescriptor("bubble",
	`Generates a bubble chart with the provided data points.
Each point carries x and y coordinates and a radius r for a third dimension.`,
	`{
  "type": "bubble",
  "data": {
    "datasets": [
      {
        "label": "Data 1",
        "data": [
          {"x": 1, "y": 4, "r": 9},
          {"x": 2, "y": 4, "r": 6},
          {"x": 3, "y": 8, "r": 30},
          {"x": 0, "y": 10, "r": 1},
          {"x": 10, "y": 5, "r": 5}
        ]
      }
    ]
  }
}`,
	chartData(shape.Object(
		datasetLabel(true),
		shape.Req("data", shape.ArrayOf(bubblePoint), "Array of {x, y, r} bubble points"),
		color("backgroundColor", "Background color of the bubbles"),
		color("borderColor", "Border color of the bubbles"),
		width("borderWidth", "Width of the bubble borders"),
		color("hoverBackgroundColor", "Background color when hovering"),
		color("hoverBorderColor", "Border color when hovering"),
		width("hoverBorderWidth", "Border width when hovering"),
		width("hoverRadius", "Radius when hovering"),
	)),
)
