package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the API server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			root, err := client.Root(cmd.Context())
			if err != nil {
				return fmt.Errorf("server %s unreachable: %w", client.BaseURL(), err)
			}
			health, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n", root.Message())
			fmt.Fprintf(w, "  Server:  %s\n", client.BaseURL())
			fmt.Fprintf(w, "  Status:  %s\n", health.Status)
			if health.Version != "" {
				fmt.Fprintf(w, "  Version: %s\n", health.Version)
			}
			if health.Uptime != "" {
				fmt.Fprintf(w, "  Uptime:  %s\n", health.Uptime)
			}

			names := make([]string, 0, len(health.Checks))
			for name := range health.Checks {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "  %-8s %s\n", name+":", health.Checks[name].Status)
			}

			if health.Status != "healthy" {
				return fmt.Errorf("server reports %s", health.Status)
			}
			return nil
		},
	}
}
