package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var Sparkline = newDescriptor("sparkline",
	`Generates a sparkline chart with the provided data.
A sparkline is a small line chart without axes, meant to be shown inline.`,
	`{
  "type": "sparkline",
  "data": {
    "datasets": [
      {
        "data": [140, 60, 274, 370, 199]
      }
    ]
  }
}`,
	chartData(shape.Object(
		numbers("Data values for the sparkline"),
		color("backgroundColor", "Background color of the sparkline"),
		color("borderColor", "Border color of the sparkline"),
		width("borderWidth", "Width of the sparkline border"),
		shape.Opt("fill", shape.Bool(), "Whether to fill the area under the line"),
		datasetLabel(false),
	)),
)
