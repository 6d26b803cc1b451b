package charts

import "github.com/mikills/tinkerings/chart-mcp/shape"

// field helpers shared by the chart kinds; each returns a fresh Field.

func labels(doc string) shape.Field {
	return shape.Req("labels", shape.ArrayOf(shape.Str()), doc)
}

func numbers(doc string) shape.Field {
	return shape.Req("data", shape.ArrayOf(shape.Num()), doc)
}

func datasetLabel(required bool) shape.Field {
	if required {
		return shape.Req("label", shape.Str(), "Label for the dataset")
	}
	return shape.Opt("label", shape.Str(), "Label for the dataset")
}

func color(name, doc string) shape.Field {
	return shape.Opt(name, shape.Str(), doc)
}

func colors(name, doc string) shape.Field {
	return shape.Opt(name, shape.ArrayOf(shape.Str()), doc)
}

func width(name, doc string) shape.Field {
	return shape.Opt(name, shape.Num(), doc)
}

// chartData wraps the dataset shape in {data: {<extra>, datasets: [...]}}.
func chartData(dataset *shape.Type, extra ...shape.Field) shape.Field {
	fields := append(append([]shape.Field(nil), extra...), shape.Req("datasets", shape.ArrayOf(dataset), "Datasets to plot"))
	return shape.Req("data", shape.Object(fields...), "Chart data")
}

// sliceStyle covers the per-slice styling shared by pie and polar area.
func sliceStyle(noun string) []shape.Field {
	return []shape.Field{
		colors("backgroundColor", "Background colors for each "+noun),
		colors("borderColor", "Border colors for each "+noun),
		width("borderWidth", "Width of the "+noun+" borders"),
		colors("hoverBackgroundColor", "Background colors when hovering"),
		colors("hoverBorderColor", "Border colors when hovering"),
		width("hoverBorderWidth", "Border width when hovering"),
	}
}
