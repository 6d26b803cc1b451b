package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var Line = newDescriptor("line",
	`Generates a line chart with the provided data.
Line charts connect data points and suit trends over time or any ordered
sequence. Set fill to shade the area under a line.`,
	`{
  "type": "line",
  "data": {
    "labels": ["January", "February", "March", "April", "May"],
    "datasets": [
      {
        "label": "Dogs",
        "data": [50, 60, 70, 180, 190],
        "fill": false,
        "borderColor": "blue"
      },
      {
        "label": "Cats",
        "data": [100, 200, 300, 400, 500],
        "fill": false,
        "borderColor": "green"
      }
    ]
  }
}`,
	chartData(
		shape.Object(
			datasetLabel(true),
			numbers("Data points for the dataset"),
			shape.Opt("fill", shape.Bool(), "Whether to fill the area under the line"),
			color("borderColor", "Color of the line border"),
			color("backgroundColor", "Background color of the line"),
			width("borderWidth", "Width of the line border"),
			width("pointRadius", "Radius of the data points"),
			color("pointBackgroundColor", "Background color of the data points"),
			color("pointBorderColor", "Border color of the data points"),
			shape.Opt("tension", shape.Num(), "Bezier curve tension of the line"),
		),
		labels("Labels for the x-axis"),
	),
)
