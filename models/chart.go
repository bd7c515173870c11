package models

// Series is an ordered sequence of readings drawn as one line.
type Series struct {
	// Name is the legend label.
	Name string `json:"name"`
	// Values are the readings, one per day.
	Values []float64 `json:"values"`
	// Color is the line and marker colour.
	Color string `json:"color"`
	// Marker is the point symbol, e.g. circle or rect.
	Marker string `json:"marker"`
	// LineWidth is the stroke width in pixels.
	LineWidth float64 `json:"line_width"`
}

// Figure is a styled single-series line chart.
type Figure struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	XLabel     string `json:"x_label"`
	YLabel     string `json:"y_label"`
	Background string `json:"background"`
	TextColor  string `json:"text_color"`
	Series     Series `json:"series"`
}
