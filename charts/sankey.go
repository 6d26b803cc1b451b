package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

var flow = shape.Object(
	shape.Req("from", shape.Str(), "Source node"),
	shape.Req("to", shape.Str(), "Target node"),
	shape.Req("flow", shape.Num(), "Flow value between nodes"),
)

var Sankey = newDescriptor("sankey",
	`Generates a sankey diagram with the provided flow data.
Each entry is a weighted connection from one node to another.`,
	`{
  "type": "sankey",
  "data": {
    "datasets": [
      {
        "data": [
          {"from": "Step A", "to": "Step B", "flow": 10},
          {"from": "Step A", "to": "Step C", "flow": 5},
          {"from": "Step B", "to": "Step C", "flow": 10},
          {"from": "Step D", "to": "Step C", "flow": 7}
        ]
      }
    ]
  }
}`,
	chartData(shape.Object(
		shape.Req("data", shape.ArrayOf(flow), "Array of flow connections between nodes"),
		datasetLabel(false),
		color("colorFrom", "Color scheme for source nodes"),
		color("colorTo", "Color scheme for target nodes"),
		shape.Opt("colorMode", shape.Str(), "Color mode for the flows"),
		width("borderWidth", "Width of the flow borders"),
	)),
)
