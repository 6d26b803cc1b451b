package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var Violin = newDescriptor("violin",
	`Generates a violin chart with the provided distribution data.
Each dataset entry is the array of samples whose distribution is drawn for the
matching label.`,
	`{
  "type": "violin",
  "data": {
    "labels": [2012, 2013, 2014, 2015],
    "datasets": [
      {
        "label": "Data",
        "data": [
          [12, 6, 3, 4],
          [1, 8, 8, 15],
          [1, 1, 1, 2, 3, 5, 9, 8],
          [19, -3, 18, 8, 5, 9, 9]
        ],
        "backgroundColor": "rgba(56,123,45,0.2)",
        "borderColor": "rgba(56,123,45,1.9)"
      }
    ]
  }
}`,
	chartData(
		shape.Object(
			datasetLabel(true),
			shape.Req("data", shape.ArrayOf(shape.ArrayOf(shape.Num())), "Array of data arrays for each violin"),
			color("backgroundColor", "Background color of the violins"),
			color("borderColor", "Border color of the violins"),
			width("borderWidth", "Width of the violin borders"),
		),
		shape.Req("labels", shape.ArrayOf(shape.OneOf(shape.Str(), shape.Num())), "Labels for each violin"),
	),
)
