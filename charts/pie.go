package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var Pie = newDescriptor("pie",
	`Generates a pie chart with the provided data.
Each slice is proportional to its value; use it for shares of a whole.`,
	`{
  "type": "pie",
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
			numbers("Data values for each pie slice"),
			datasetLabel(false),
		}, sliceStyle("slice")...)...),
		labels("Labels for each pie slice"),
	),
)
