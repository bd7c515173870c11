// Package commands implements the smartcity command line.
package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/services"
)

// Version is set at build time.
var Version = "1.0.0"

const modelRequestTimeout = 60 * time.Second

// GeneratorFactory builds the model client for a loaded config.
type GeneratorFactory func(ctx context.Context, cfg *config.Config) (services.TextGenerator, error)

// DefaultGeneratorFactory connects to the configured provider over a shared
// HTTP client.
func DefaultGeneratorFactory(ctx context.Context, cfg *config.Config) (services.TextGenerator, error) {
	httpClient := &http.Client{
		Timeout: modelRequestTimeout,
	}
	return services.NewTextGenerator(ctx, cfg, httpClient)
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(newGenerator GeneratorFactory) *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:   "smartcity",
		Short: "Smart City Assistant",
		Long: `Smart City Assistant serves an AI-powered citizen help desk, a small
sustainability dashboard and a weekly report over HTTP.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return
			}
			config.LoadEnvFiles(envFiles...)
		},
	}

	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	rootCmd.AddCommand(
		NewServeCommand(newGenerator),
		NewAskCommand(newGenerator),
		NewReportCommand(),
		NewChartCommand(),
	)

	return rootCmd
}
