// Package formatter renders the operation catalog for the read-only
// `operations` listing in table, json, or yaml form.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/nanoware/pkgbroker/internal/catalog"
)

// OperationRow is the serializable view of one catalog entry.
type OperationRow struct {
	Name      string   `json:"name" yaml:"name"`
	Command   string   `json:"command" yaml:"command"`
	Target    string   `json:"target" yaml:"target"`
	AssumeYes bool     `json:"assume_yes" yaml:"assume_yes"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// Rows converts catalog entries into their listing view.
func Rows(ops []catalog.Operation) []OperationRow {
	rows := make([]OperationRow, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, OperationRow{
			Name:      op.Name,
			Command:   strings.Join(op.Tokens, " "),
			Target:    op.Target.String(),
			AssumeYes: op.AssumeYes,
			Modifiers: op.Modifiers,
		})
	}
	return rows
}

// Render writes rows to w in the requested format: "table" (default),
// "json", or "yaml".
func Render(w io.Writer, rows []OperationRow, format string) error {
	switch format {
	case "", "table":
		return renderTable(w, rows)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (valid: table|json|yaml)", format)
	}
}

func renderTable(w io.Writer, rows []OperationRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOMMAND\tTARGET\tASSUME-YES\tMODIFIERS")
	for _, row := range rows {
		yes := "no"
		if row.AssumeYes {
			yes = "yes"
		}
		modifiers := "-"
		if len(row.Modifiers) > 0 {
			modifiers = strings.Join(row.Modifiers, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.Name, row.Command, row.Target, yes, modifiers)
	}
	return tw.Flush()
}
