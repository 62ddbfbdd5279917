package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lotayaai/lotaya-io/internal/cli/render"
	"github.com/lotayaai/lotaya-io/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the version, commit hash, and build date of the Lotaya CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Info()
			if a.cfg.Output != "table" {
				return writeOutput(cmd.OutOrStdout(), a.cfg.Output, info, func() (render.Table, error) {
					return render.Table{}, nil
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Lotaya CLI\n")
			fmt.Fprintf(w, "  Version:    %s\n", info.Version)
			fmt.Fprintf(w, "  Commit:     %s\n", info.GitCommit)
			fmt.Fprintf(w, "  Built:      %s\n", info.BuildTime)
			fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
