package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var font = shape.Object(
	shape.Opt("size", shape.Num(), "Font size in pixels"),
	shape.Opt("weight", shape.Str(), "Font weight (e.g. 'bold')"),
)

var doughnutOptions = shape.Object(
	shape.Opt("circumference", shape.Num(), "Sweep of the arc in radians"),
	shape.Opt("rotation", shape.Num(), "Starting angle in radians"),
	shape.Opt("cutoutPercentage", shape.Num(), "Size of the hole as a percentage of the radius"),
	shape.Opt("layout", shape.Object(
		shape.Opt("padding", shape.Num(), "Padding around the chart"),
	), "Layout options"),
	shape.Opt("legend", shape.Object(
		shape.Opt("display", shape.Bool(), "Whether to show the legend"),
	), "Legend options"),
	shape.Opt("plugins", shape.Object(
		shape.Opt("doughnutlabel", shape.Object(
			shape.Opt("labels", shape.ArrayOf(shape.Object(
				shape.Req("text", shape.Str(), "Text shown in the center"),
				shape.Opt("font", font, "Font of the text"),
				shape.Opt("color", shape.Str(), "Color of the text"),
			)), "Lines of text drawn in the doughnut hole"),
		), "Center label plugin"),
		shape.Opt("datalabels", shape.Object(
			shape.Opt("color", shape.Str(), "Color of the data labels"),
			shape.Opt("anchor", shape.Str(), "Anchor position of the labels"),
			shape.Opt("align", shape.Str(), "Alignment of the labels"),
			// callbacks cannot be sent to the renderer; accepted and dropped
			shape.Opt("formatter", shape.Func(), "Label formatter callback (not supported, ignored)"),
			shape.Opt("font", font, "Font of the labels"),
		), "Data label plugin"),
	), "Plugin options"),
)

var Doughnut = newDescriptor("doughnut",
	`Generates a doughnut chart with the provided data.
Doughnut charts split a ring into segments proportional to each value; use
them for part-to-whole relationships. Text can be drawn in the hole with the
doughnutlabel plugin.`,
	`{
  "type": "doughnut",
  "data": {
    "labels": ["January", "February", "March", "April", "May"],
    "datasets": [
      {
        "data": [50, 60, 70, 180, 190]
      }
    ]
  },
  "options": {
    "plugins": {
      "doughnutlabel": {
        "labels": [
          {"text": "550", "font": {"size": 20}},
          {"text": "total"}
        ]
      }
    }
  }
}`,
	chartData(
		shape.Object(
			numbers("Data values for each slice"),
			datasetLabel(false),
			shape.Opt("backgroundColor", shape.OneOf(shape.Str(), shape.ArrayOf(shape.Str())), "Background colors for slices"),
			shape.Opt("borderColor", shape.OneOf(shape.Str(), shape.ArrayOf(shape.Str())), "Border colors for slices"),
			width("borderWidth", "Width of the slice borders"),
			colors("hoverBackgroundColor", "Background colors when hovering"),
			colors("hoverBorderColor", "Border colors when hovering"),
			width("hoverBorderWidth", "Border width when hovering"),
		),
		labels("Labels for each doughnut slice"),
	),
	shape.Opt("options", doughnutOptions, "Chart options"),
)
