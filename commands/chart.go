package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github/itish2003/smartcity/services"
)

// NewChartCommand creates the chart command. It prints a dashboard figure as
// JSON, or writes the rendered chart page with --html.
func NewChartCommand() *cobra.Command {
	var htmlOut string

	dashboard := services.NewDashboardService()

	cmd := &cobra.Command{
		Use:       "chart <aqi|energy>",
		Short:     "Show one of the dashboard charts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: dashboard.ChartNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := dashboard.Chart(args[0])
			if err != nil {
				return err
			}

			if htmlOut != "" {
				f, err := os.Create(htmlOut)
				if err != nil {
					return fmt.Errorf("could not create %s: %w", htmlOut, err)
				}
				defer f.Close()
				return services.RenderLineChart(f, fig)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fig)
		},
	}

	cmd.Flags().StringVar(&htmlOut, "html", "", "write the chart page to this file")

	return cmd
}
