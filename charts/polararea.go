package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var PolarArea = newDescriptor("polarArea",
	`Generates a polar area chart with the provided data.
Segments share the same angle and differ in radius according to their value.`,
	`{
  "type": "polarArea",
  "data": {
    "labels": ["January", "February", "March", "April", "May"],
    "datasets": [
      {
        "data": [50, 60, 70, 180, 190]
      }
    ]
  }
}`,
	chartData(
		shape.Object(append([]shape.Field{
			numbers("Data values for each segment"),
			datasetLabel(false),
		}, sliceStyle("segment")...)...),
		labels("Labels for each polar area segment"),
	),
)
