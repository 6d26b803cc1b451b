package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var Bar = newDescriptor("bar",
	`Generates a bar chart with the provided data.
Bar charts show data values as vertical bars. Use this to compare categories
or several datasets side by side (monthly sales, regional comparisons).`,
	`{
  "type": "bar",
  "data": {
    "labels": ["January", "February", "March", "April", "May"],
    "datasets": [
      { "label": "Dogs", "data": [50, 60, 70, 180, 190] },
      { "label": "Cats", "data": [100, 200, 300, 400, 500] }
    ]
  }
}`,
	chartData(
		shape.Object(
			datasetLabel(true),
			numbers("Data points for the dataset"),
		),
		labels("Labels for the x-axis"),
	),
)
