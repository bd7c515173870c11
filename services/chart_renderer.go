package services

import (
	"fmt"
	"io"

	"github/itish2003/smartcity/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderLineChart writes fig as a standalone HTML page holding an ECharts line chart.
func RenderLineChart(w io.Writer, fig *models.Figure) error {
	axisLabel := &opts.AxisLabel{Color: fig.TextColor}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       fig.Title,
			ChartID:         fig.ID,
			Width:           "640px",
			Height:          "400px",
			BackgroundColor: fig.Background,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      fig.Title,
			TitleStyle: &opts.TextStyle{Color: fig.TextColor},
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: fig.XLabel, AxisLabel: axisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.YLabel, AxisLabel: axisLabel}),
	)

	days := make([]string, len(fig.Series.Values))
	data := make([]opts.LineData, len(fig.Series.Values))
	for i, v := range fig.Series.Values {
		days[i] = fmt.Sprintf("%d", i)
		data[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(days).AddSeries(fig.Series.Name, data,
		charts.WithLineChartOpts(opts.LineChart{Symbol: fig.Series.Marker}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: fig.Series.Color, Width: float32(fig.Series.LineWidth)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: fig.Series.Color}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart %s: %w", fig.ID, err)
	}
	return nil
}
