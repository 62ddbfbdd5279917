package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lotayaai/lotaya-io/internal/cli/render"
	"github.com/lotayaai/lotaya-io/internal/tools"
)

type toolSummary struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Operation   string `json:"operation" yaml:"operation"`
}

type fieldSummary struct {
	Name    string   `json:"name" yaml:"name"`
	Label   string   `json:"label" yaml:"label"`
	Kind    string   `json:"kind" yaml:"kind"`
	Default string   `json:"default,omitempty" yaml:"default,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

func newToolsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the available design tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := a.registry.All()
			out := make([]toolSummary, 0, len(all))
			for _, d := range all {
				out = append(out, toolSummary{d.ID, d.Name, d.Description, d.Form.Operation()})
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Output, out, func() (render.Table, error) {
				t := render.Table{Header: []string{"ID", "Name", "Description"}}
				for _, s := range out {
					t.Rows = append(t.Rows, []string{s.ID, s.Name, s.Description})
				}
				return t, nil
			})
		},
	}
	cmd.AddCommand(newToolsShowCmd(a))
	return cmd
}

func newToolsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "show <tool>",
		Short:     "Show the fields a tool accepts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: toolIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			var fields []fieldSummary
			defaults := tools.Defaults(d.Form)
			for _, f := range d.Form.Schema() {
				if f.Hidden {
					continue
				}
				s := fieldSummary{Name: f.Name, Label: f.Label, Kind: f.Kind.String(), Default: defaults.Display(f.Name)}
				for _, o := range f.Options {
					s.Options = append(s.Options, o.Value)
				}
				fields = append(fields, s)
			}

			if a.cfg.Output == "table" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n\n", d.Name, d.ID, d.Description)
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Output, fields, func() (render.Table, error) {
				t := render.Table{Header: []string{"Field", "Label", "Kind", "Default", "Options"}}
				for _, f := range fields {
					t.Rows = append(t.Rows, []string{f.Name, f.Label, f.Kind, f.Default, strings.Join(f.Options, ", ")})
				}
				return t, nil
			})
		},
	}
}

func toolIDs() []string {
	all := tools.Default().All()
	ids := make([]string, 0, len(all))
	for _, d := range all {
		ids = append(ids, d.ID)
	}
	return ids
}
