package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lotayaai/lotaya-io/internal/cli/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigSetServerCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Current Configuration:")
			table := tablewriter.NewWriter(w)
			table.Header("Setting", "Value")
			table.Append("Server URL", cfg.ServerURL)
			table.Append("Website URL", cfg.WebsiteURL)
			table.Append("Timeout", cfg.RequestTimeout().String())
			table.Append("Output", cfg.Output)
			table.Append("Debug", fmt.Sprintf("%v", cfg.Debug))
			table.Append("Color", cfg.UI.Color)
			table.Append("Config File", config.DiscoverPath(a.cfgFile))
			return table.Render()
		},
	}
}

func newConfigSetServerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-server <url>",
		Short: "Set the API server URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := strings.TrimRight(strings.TrimSpace(args[0]), "/")
			if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
				return fmt.Errorf("server URL must start with http:// or https://")
			}

			path := config.DiscoverPath(a.cfgFile)
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ServerURL = url
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server URL set to %s (%s)\n", url, path)
			return nil
		},
	}
}
