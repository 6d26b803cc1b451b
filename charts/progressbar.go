package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var ProgressBar = newDescriptor("progressBar",
	`Generates a progress bar chart with the provided value.
data holds the progress value, typically between 0 and 100.`,
	`{
  "type": "progressBar",
  "data": {
    "datasets": [
      {
        "data": [50]
      }
    ]
  }
}`,
	chartData(shape.Object(
		numbers("Progress value (typically 0-100)"),
		color("backgroundColor", "Background color of the progress bar"),
		color("borderColor", "Border color of the progress bar"),
		width("borderWidth", "Width of the progress bar border"),
		datasetLabel(false),
		color("barColor", "Color of the progress bar fill"),
		color("barBackgroundColor", "Background color of the empty progress bar"),
	)),
)
