package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "open [tool]",
		Short:     "Open the website, optionally with a tool's modal shown",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: toolIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimRight(a.cfg.WebsiteURL, "/") + "/"
			if len(args) == 1 {
				d, err := a.registry.Lookup(args[0])
				if err != nil {
					return err
				}
				target += "tools/" + d.ID
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opening %s\n", target)
			if err := openURL(target); err != nil {
				return fmt.Errorf("failed to open browser automatically, please open this URL manually:\n%s\nError: %w", target, err)
			}
			return nil
		},
	}
}
