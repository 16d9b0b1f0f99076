package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jeduden/textstat/internal/metrics"
)

// WriteMetricList writes the metric registry as a table or JSON array.
func WriteMetricList(w io.Writer, format string, defs []metrics.Definition) error {
	switch format {
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "ID\tNAME\tORDER\tDEFAULT\tDESCRIPTION"); err != nil {
			return err
		}
		for _, def := range defs {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
				def.ID, def.Name, def.DefaultOrder, def.Default, def.Description); err != nil {
				return err
			}
		}
		return tw.Flush()
	case "json":
		if defs == nil {
			defs = []metrics.Definition{}
		}
		return encodeJSON(w, defs)
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}

// WriteRank writes ranked rows with one column per metric followed by the
// path, or a JSON array of objects keyed by metric name.
func WriteRank(w io.Writer, format string, rows []metrics.Row, defs []metrics.Definition) error {
	switch format {
	case "", "text":
		return writeRankText(w, rows, defs)
	case "json":
		items := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			item := map[string]any{"path": row.Path}
			for _, def := range defs {
				item[def.Name] = metrics.JSONValue(def, row.Metrics[def.Name])
			}
			items = append(items, item)
		}
		return encodeJSON(w, items)
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}

func writeRankText(w io.Writer, rows []metrics.Row, defs []metrics.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, 0, len(defs)+1)
	for _, def := range defs {
		headers = append(headers, strings.ToUpper(def.Name))
	}
	headers = append(headers, "PATH")
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		cols := make([]string, 0, len(defs)+1)
		for _, def := range defs {
			cols = append(cols, metrics.FormatValue(def, row.Metrics[def.Name]))
		}
		cols = append(cols, row.Path)
		if _, err := fmt.Fprintln(tw, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
