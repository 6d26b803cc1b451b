package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var Radar = newDescriptor("radar",
	`Generates a radar chart with the provided data.
Radar charts plot several variables on axes starting from the same point;
use them to compare datasets across multiple dimensions.`,
	`{
  "type": "radar",
  "data": {
    "labels": ["January", "February", "March", "April", "May"],
    "datasets": [
      {
        "label": "Dogs",
        "data": [50, 60, 70, 180, 190]
      },
      {
        "label": "Cats",
        "data": [100, 200, 300, 400, 500]
      }
    ]
  }
}`,
	chartData(
		shape.Object(
			datasetLabel(true),
			numbers("Data points for each axis"),
			color("backgroundColor", "Fill color of the radar area"),
			color("borderColor", "Color of the radar border line"),
			width("borderWidth", "Width of the border line"),
			color("pointBackgroundColor", "Background color of the data points"),
			color("pointBorderColor", "Border color of the data points"),
			width("pointRadius", "Radius of the data points"),
			shape.Opt("fill", shape.Bool(), "Whether to fill the area"),
		),
		labels("Labels for the radar chart axes"),
	),
)
