package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/lotayaai/lotaya-io/internal/cli/render"
)

func checkFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

// writeOutput prints v as JSON or YAML, or calls table for the table format.
func writeOutput(w io.Writer, format string, v any, table func() (render.Table, error)) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		t, err := table()
		if err != nil {
			return err
		}
		return writeTable(w, t)
	}
}

func writeTable(w io.Writer, t render.Table) error {
	table := tablewriter.NewWriter(w)
	table.Header(cells(t.Header)...)
	for _, row := range t.Rows {
		if err := table.Append(cells(row)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}
