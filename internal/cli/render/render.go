// Package render turns API payloads into rows and text for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

// Table is a header plus rows, ready for a table writer.
type Table struct {
	Header []string
	Rows   [][]string
}

// Result lays out the payload of tool as a table.
func Result(tool string, p sdk.Payload) (Table, error) {
	switch tool {
	case tools.Domain:
		var res sdk.DomainResult
		if err := p.Decode(&res); err != nil {
			return Table{}, err
		}
		t := Table{Header: []string{"Domain", "Available", "Price"}}
		for _, s := range res.Suggestions {
			t.Rows = append(t.Rows, []string{s.Domain, yesNo(s.Available), s.Price})
		}
		return t, nil

	case tools.Slogan:
		var res sdk.SloganResult
		if err := p.Decode(&res); err != nil {
			return Table{}, err
		}
		t := Table{Header: []string{"#", "Slogan"}}
		for i, s := range res.Slogans {
			t.Rows = append(t.Rows, []string{fmt.Sprint(i + 1), s})
		}
		return t, nil

	case tools.Chat:
		var res sdk.ChatResult
		if err := p.Decode(&res); err != nil {
			return Table{}, err
		}
		t := Table{Header: []string{"Field", "Value"}}
		t.Rows = append(t.Rows, []string{"response", res.Response})
		for _, s := range res.Suggestions {
			t.Rows = append(t.Rows, []string{"suggestion", s})
		}
		return t, nil
	}

	var res sdk.GenerationResult
	if err := p.Decode(&res); err != nil {
		return Table{}, err
	}
	t := Table{Header: []string{"Field", "Value"}}
	add := func(k, v string) {
		if v != "" {
			t.Rows = append(t.Rows, []string{k, v})
		}
	}
	add("job", res.JobID)
	add("status", res.Status)
	add("message", res.Message)
	add("asset", res.AssetURL)
	for _, k := range sortedKeys(res.Metadata) {
		add(k, Value(res.Metadata[k]))
	}
	return t, nil
}

// Text renders the payload as aligned "key: value" lines.
func Text(tool string, p sdk.Payload) string {
	t, err := Result(tool, p)
	if err != nil {
		return "Unexpected response: " + err.Error()
	}

	var sb strings.Builder
	if len(t.Header) == 2 && t.Header[0] == "Field" {
		width := 0
		for _, r := range t.Rows {
			width = max(width, len(r[0]))
		}
		for _, r := range t.Rows {
			fmt.Fprintf(&sb, "%-*s  %s\n", width, r[0], r[1])
		}
		return sb.String()
	}

	for _, r := range t.Rows {
		sb.WriteString(strings.Join(r, "  "))
		sb.WriteString("\n")
	}
	if tool == tools.Domain {
		available, taken, err := tools.DomainSummary(p)
		if err == nil {
			fmt.Fprintf(&sb, "\n%d available, %d taken\n", available, taken)
		}
	}
	return sb.String()
}

// Value formats a metadata value on one line.
func Value(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, Value(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		parts := make([]string, 0, len(t))
		for _, k := range sortedKeys(t) {
			parts = append(parts, k+": "+Value(t[k]))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(t)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
