package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-tab-search/config"
	"github.com/gcbaptista/go-tab-search/internal/destination"
)

func newDestinationCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "destination QUERY...",
		Short: "Print where a query navigates when nothing matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.SearchSettings{SearchURLTemplate: template}
			if problems := settings.Validate(); len(problems) > 0 {
				return fmt.Errorf("invalid template: %s", strings.Join(problems, "; "))
			}
			builder := destination.NewBuilder(template)
			fmt.Fprintln(cmd.OutOrStdout(), builder.Build(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "search URL template with one %s (default Google)")

	return cmd
}
