package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/countrylist/internal/cli/pagination"
	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/view"
)

// tabwriterPadding is the minimum padding between columns in the list table.
const tabwriterPadding = 2

// ListOutput is the JSON document printed by list --output json.
type ListOutput struct {
	Records    []country.Record          `json:"records"`
	Pagination pagination.PaginationMeta `json:"pagination"`
}

// RenderList writes one reduced page in the given format.
func RenderList(w io.Writer, format string, state view.State, result view.Result) error {
	switch format {
	case config.OutputJSON:
		return renderListJSON(w, state, result)
	case config.OutputNDJSON:
		return renderListNDJSON(w, result)
	case config.OutputTable:
		return renderListTable(w, state, result)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderListTable(w io.Writer, state view.State, result view.Result) error {
	if result.Empty() {
		_, err := fmt.Fprintln(w, "No countries match the current filters.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "NAME\tAREA (KM²)\tREGION\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range result.Records {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, view.FormatArea(r.Area), r.Region); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	filters := "none"
	if keys := state.Filters.Keys(); len(keys) > 0 {
		filters = strings.Join(keys, ",")
	}
	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d countries, sort %s, filters %s)\n",
		result.Page, result.PageCount, result.Total, state.Sort, filters)
	return err
}

func renderListJSON(w io.Writer, state view.State, result view.Result) error {
	records := result.Records
	if records == nil {
		records = []country.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ListOutput{
		Records:    records,
		Pagination: pagination.NewPaginationMeta(state, result),
	})
}

func renderListNDJSON(w io.Writer, result view.Result) error {
	enc := json.NewEncoder(w)
	for _, r := range result.Records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}
