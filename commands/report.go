package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github/itish2003/smartcity/services"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var (
		asPDF  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print or export the weekly sustainability report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports := services.NewReportService(os.Getenv("UNIDOC_LICENSE_KEY"))
			if asPDF && !reports.PDFEnabled() {
				return services.ErrPDFUnavailable
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("could not create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			} else if asPDF {
				return fmt.Errorf("--pdf needs --output")
			}

			if asPDF {
				return reports.WritePDF(w)
			}
			return reports.WriteText(w)
		},
	}

	cmd.Flags().BoolVar(&asPDF, "pdf", false, "export as PDF (needs UNIDOC_LICENSE_KEY)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
