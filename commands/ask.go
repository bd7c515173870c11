package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/services"
)

// NewAskCommand creates the ask command, a one-shot version of the
// assistant tab.
func NewAskCommand(newGenerator GeneratorFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the AI assistant a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			generator, err := newGenerator(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
			}

			answer, err := services.NewAssistantService(generator, cfg.Decoding).Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
