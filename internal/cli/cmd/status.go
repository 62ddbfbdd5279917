package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lotayaai/lotaya-io/internal/cli/render"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Record and list client status checks",
	}
	cmd.AddCommand(newStatusCreateCmd(a), newStatusListCmd(a))
	return cmd
}

func newStatusCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <client-name>",
		Short: "Record a status check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			check, err := client.CreateStatusCheck(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeChecks(cmd, a, check, []sdk.StatusCheck{*check})
		},
	}
}

func newStatusListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded status checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			checks, err := client.ListStatusChecks(cmd.Context())
			if err != nil {
				return err
			}
			return writeChecks(cmd, a, checks, checks)
		},
	}
}

func writeChecks(cmd *cobra.Command, a *app, v any, checks []sdk.StatusCheck) error {
	return writeOutput(cmd.OutOrStdout(), a.cfg.Output, v, func() (render.Table, error) {
		t := render.Table{Header: []string{"ID", "Client", "Timestamp"}}
		for _, c := range checks {
			t.Rows = append(t.Rows, []string{c.ID, c.ClientName, c.Timestamp.Format(time.RFC3339)})
		}
		return t, nil
	})
}
